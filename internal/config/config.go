// Package config loads the words2num command configuration.
package config

// Config is the root command configuration.
type Config struct {
	Locale string       `yaml:"locale" env:"WORDS2NUM_LOCALE" env-default:"fr"`
	Denorm DenormConfig `yaml:"denorm"`
	Log    LogConfig    `yaml:"log"`
}

// DenormConfig holds settings for rewriting files.
type DenormConfig struct {
	Workers    int      `yaml:"workers"    env:"WORDS2NUM_WORKERS"    env-default:"4"`
	Extensions []string `yaml:"extensions" env:"WORDS2NUM_EXTENSIONS" env-default:".txt"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
