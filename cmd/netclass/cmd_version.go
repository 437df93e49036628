package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HerbHall/netclass/internal/config"
	"github.com/HerbHall/netclass/internal/version"
)

func (a *app) newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Long: `Prints a one-line build summary. With --output, or a non-default output
format from the config file or environment, prints the build information
in that format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return err
			}
			if cmd.Flags().Changed("output") || a.settings.Output != config.OutputJSON {
				return a.render(cmd.OutOrStdout(), version.Current())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
