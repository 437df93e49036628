package main

import (
	"github.com/spf13/cobra"

	"github.com/HerbHall/netclass/pkg/ipspace"
)

func (a *app) newRangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "Print the IPv4 special-purpose address registry in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.addressRegistry()
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), struct {
				Blocks []ipspace.Block `json:"blocks" yaml:"blocks"`
			}{reg.Blocks()})
		},
	}
}
