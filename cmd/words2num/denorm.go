package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jeronymous/words2num/denorm"
)

func newDenormCmd(a *app) *cobra.Command {
	var (
		inPlace bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "denorm [paths...]",
		Short: "Rewrite spelled-out numbers in text as digits",
		Long: "Rewrite number phrases as digits. Without paths, standard input is " +
			"rewritten to standard output. Directories are walked for files with " +
			"the configured extensions and processed concurrently.",
		Example: "  echo 'il y a deux cent cinquante personnes' | words2num denorm\n" +
			"  words2num denorm -l fr_CA -i transcripts/",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			r := denorm.New(e)

			if len(args) == 0 {
				_, err := rewrite(r, cmd.InOrStdin(), cmd.OutOrStdout())
				return err
			}

			paths, err := collectFiles(args, a.cfg.Denorm.Extensions)
			if err != nil {
				return err
			}
			a.logger.Debug("found files", "count", len(paths), "locale", e.Locale().Tag)
			return a.denormFiles(cmd.Context(), r, paths, workers, inPlace, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "rewrite files in place instead of printing them")
	cmd.Flags().IntVarP(&workers, "workers", "j", a.cfg.Denorm.Workers, "files processed concurrently")

	return cmd
}

// rewrite copies src to dst line by line, replacing number phrases. It
// returns the number of lines changed.
func rewrite(r *denorm.Replacer, src io.Reader, dst io.Writer) (int, error) {
	br := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)

	changed := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			out := r.Replace(line)
			if out != line {
				changed++
			}
			if _, werr := bw.WriteString(out); werr != nil {
				return changed, werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return changed, err
		}
	}
	return changed, bw.Flush()
}

// collectFiles expands directories in args into the files they contain with
// one of exts. Files named explicitly are kept whatever their extension.
func collectFiles(args, exts []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !slices.Contains(exts, strings.ToLower(filepath.Ext(d.Name()))) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}
	return paths, nil
}

// denormFiles processes paths with at most workers files in flight. Unless
// inPlace is set, results are written to out in input order.
func (a *app) denormFiles(ctx context.Context, r *denorm.Replacer, paths []string, workers int, inPlace bool, out io.Writer) error {
	if workers < 1 {
		workers = 1
	}

	results := make([]bytes.Buffer, len(paths))
	errs := make([]error, len(paths))

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		if ctx.Err() != nil {
			errs[i] = ctx.Err()
			break
		}
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			errs[i] = a.denormFile(r, path, inPlace, &results[i])
		})
	}

	wg.Wait()

	if !inPlace {
		for i := range results {
			if _, err := results[i].WriteTo(out); err != nil {
				return err
			}
		}
	}
	return errors.Join(errs...)
}

func (a *app) denormFile(r *denorm.Replacer, path string, inPlace bool, buf *bytes.Buffer) error {
	start := time.Now()

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		a.logger.Error("open failed", "path", path, "error", err)
		return err
	}
	defer func() { _ = f.Close() }()

	changed, err := rewrite(r, f, buf)
	if err != nil {
		a.logger.Error("rewrite failed", "path", path, "error", err)
		return fmt.Errorf("%s: %w", path, err)
	}

	if inPlace && changed > 0 {
		info, err := f.Stat()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, buf.Bytes(), info.Mode().Perm()); err != nil {
			a.logger.Error("write failed", "path", path, "error", err)
			return err
		}
	}

	a.logger.Info("denormalized",
		"path", path,
		"lines_changed", changed,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
