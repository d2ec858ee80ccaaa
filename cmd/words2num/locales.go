package main

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newLocalesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "locales",
		Aliases: []string{"ls"},
		Short:   "List supported locales",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry()
			if err != nil {
				return err
			}

			var data [][]string
			for _, tag := range r.Tags() {
				loc, err := r.Locale(tag)
				if err != nil {
					return err
				}
				largest, _ := loc.Table.Max()
				data = append(data, []string{
					loc.Tag,
					strings.Join(loc.Aliases, ","),
					strings.Join(loc.DecimalMarkers, ","),
					loc.DecimalSeparator,
					strconv.Itoa(loc.Table.Len()),
					largest,
				})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"TAG", "ALIASES", "DECIMAL MARKERS", "SEPARATOR", "WORDS", "LARGEST"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.SetAutoWrapText(false)
			table.AppendBulk(data)
			table.Render()

			return nil
		},
	}
}
