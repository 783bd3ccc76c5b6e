package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List the stations of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, _, _, err := a.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range ds.Network().Stations() {
				fmt.Fprintf(tw, "%s\t%s\n", s.Code, s.Name)
			}
			return tw.Flush()
		},
	}
}
