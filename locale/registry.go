// Package locale loads the locale tables and routes locale tags to engines.
//
// A tag is resolved in order: the exact tag or one of its aliases, then its
// two-letter language prefix. Hyphens and underscores are interchangeable
// and matching ignores case, so "fr-CA", "fr_ca" and "fr_XX" all reach the
// French engine.
//
// A Registry is read-only after Load and safe for concurrent use.
package locale

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/Jeronymous/words2num/vocab"
	"github.com/Jeronymous/words2num/wordnum"
)

var (
	ErrUnsupportedLocale = errors.New("locale: unsupported locale")
	ErrDuplicateTag      = errors.New("locale: tag registered twice")
)

// Registry maps locale tags to engines.
type Registry struct {
	engines map[string]*wordnum.Engine // by normalized tag or alias
	tags    []string                   // primary tags, sorted
}

// Load parses every *.yaml file at the root of fsys.
func Load(fsys fs.FS) (*Registry, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("locale: list tables: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("locale: no *.yaml tables found")
	}

	locales := make([]*vocab.Locale, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", name, err)
		}
		loc, err := vocab.ParseLocale(raw)
		if err != nil {
			return nil, fmt.Errorf("locale: %s: %w", path.Base(name), err)
		}
		locales = append(locales, loc)
	}
	return New(locales...)
}

// New builds a registry from already parsed locales.
func New(locales ...*vocab.Locale) (*Registry, error) {
	r := &Registry{engines: make(map[string]*wordnum.Engine)}
	for _, loc := range locales {
		e := wordnum.New(loc)
		for _, tag := range slices.Concat([]string{loc.Tag}, loc.Aliases) {
			key := normalize(tag)
			if _, dup := r.engines[key]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
			}
			r.engines[key] = e
		}
		r.tags = append(r.tags, loc.Tag)
	}
	slices.Sort(r.tags)
	return r, nil
}

// Resolve returns the engine for tag.
func (r *Registry) Resolve(tag string) (*wordnum.Engine, error) {
	key := normalize(tag)
	if e, ok := r.engines[key]; ok {
		return e, nil
	}
	if len(key) > 2 {
		if e, ok := r.engines[key[:2]]; ok {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, tag)
}

// Locale returns the locale configuration tag resolves to.
func (r *Registry) Locale(tag string) (*vocab.Locale, error) {
	e, err := r.Resolve(tag)
	if err != nil {
		return nil, err
	}
	return e.Locale(), nil
}

// Tags returns the primary tags of all loaded locales, sorted.
func (r *Registry) Tags() []string {
	return slices.Clone(r.tags)
}

func normalize(tag string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "-", "_"))
}
