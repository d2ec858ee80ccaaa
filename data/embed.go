// Package data embeds the locale tables shipped with the module.
package data

import "embed"

// Locales holds one YAML table per language under locales/.
//
//go:embed locales/*.yaml
var Locales embed.FS
