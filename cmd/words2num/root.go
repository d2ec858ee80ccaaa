package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Jeronymous/words2num"
	"github.com/Jeronymous/words2num/internal/config"
	"github.com/Jeronymous/words2num/locale"
	"github.com/Jeronymous/words2num/wordnum"
)

// app carries what every subcommand needs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	locale string // --locale, defaults to cfg.Locale
}

func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	rootCmd := &cobra.Command{
		Use:   "words2num",
		Short: "Convert spelled-out numbers to digits",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.locale, "locale", "l", cfg.Locale, "locale tag (fr, fr_CA, en, az, ...)")

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		newEvalCmd(a),
		newDenormCmd(a),
		newLocalesCmd(a),
	)

	return rootCmd
}

// registry returns the built-in locale registry.
func (a *app) registry() (*locale.Registry, error) {
	return words2num.Registry()
}

// engine resolves the selected locale.
func (a *app) engine() (*wordnum.Engine, error) {
	r, err := a.registry()
	if err != nil {
		return nil, err
	}
	return r.Resolve(a.locale)
}
