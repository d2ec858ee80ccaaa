// Command words2num evaluates spelled-out numbers and rewrites them as
// digits in text.
//
// Usage:
//
//	words2num eval [-l tag] [--float] [words...]
//	words2num denorm [-l tag] [-i] [-j workers] [paths...]
//	words2num locales
//
// Configuration is read from ./words2num.yaml (or the file named by
// WORDS2NUM_CONFIG) and overridden by environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Jeronymous/words2num/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = newRootCmd(cfg, logger).ExecuteContext(ctx)
	stop()
	cobra.CheckErr(err)
}
