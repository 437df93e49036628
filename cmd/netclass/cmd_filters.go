package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List available filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.addressRegistry()
			if err != nil {
				return err
			}
			filters, err := a.filters(reg)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, f := range filters.All() {
				fmt.Fprintf(tw, "%s\t%s\n", f.Name(), f.Description())
			}
			return tw.Flush()
		},
	}
}
