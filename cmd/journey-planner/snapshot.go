package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

func newSnapshotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot OUT",
		Short: "Write the configured dataset as a gob snapshot",
		Long: `Load the configured dataset (GTFS, YAML or snapshot) and write it to OUT
as a gob snapshot. Loading a snapshot skips GTFS parsing on startup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, _, err := a.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			n := ds.Network()
			if err := network.SerializeNetworkToFile(n, args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d stations, %d connections\n",
				args[0], n.StationCount(), n.ConnectionCount())
			return err
		},
	}
}
