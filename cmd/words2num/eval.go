package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jeronymous/words2num/wordnum"
)

// maxLineBytes bounds a single stdin line; longer phrases are rejected by
// the engine anyway.
const maxLineBytes = 2 << 20

func newEvalCmd(a *app) *cobra.Command {
	var asFloat bool

	cmd := &cobra.Command{
		Use:   "eval [words...]",
		Short: "Evaluate a spelled-out number",
		Long: "Evaluate the phrase given as arguments. Without arguments, each " +
			"line of standard input is evaluated and one value is printed per line.",
		Example: "  words2num eval quatre-vingt-dix-neuf\n" +
			"  words2num eval -l en nine hundred and nineteen\n" +
			"  words2num eval --float cinq virgule deux < phrases.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				s, err := evaluate(e, strings.Join(args, " "), asFloat)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
				return err
			}
			return a.evalLines(e, cmd.InOrStdin(), cmd.OutOrStdout(), asFloat)
		},
	}

	cmd.Flags().BoolVar(&asFloat, "float", false, "print the value as a float64")

	return cmd
}

// evalLines evaluates every line of r. Blank and failed lines are printed as
// empty lines so output stays aligned with input; failures are logged.
func (a *app) evalLines(e *wordnum.Engine, r io.Reader, w io.Writer, asFloat bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var line, failed int
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		var s string
		if text != "" {
			var err error
			if s, err = evaluate(e, text, asFloat); err != nil {
				failed++
				a.logger.Warn("evaluate failed", "line", line, "error", err)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d phrase(s) could not be evaluated", failed)
	}
	return nil
}

func evaluate(e *wordnum.Engine, text string, asFloat bool) (string, error) {
	v, err := e.Evaluate(text)
	if err != nil {
		return "", err
	}
	if asFloat {
		f, _ := v.Float64()
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return v.String(), nil
}
