package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/journey-planner/formatter"
	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

func newPlanCmd(a *app) *cobra.Command {
	var (
		results int
		format  string
	)
	cmd := &cobra.Command{
		Use:   "plan FROM TO",
		Short: "Print journeys between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ds, p, _, err := a.bootstrap(ctx)
			if err != nil {
				return err
			}
			journeys, err := p.Plan(ctx, args[0], args[1], results)
			if err != nil {
				return err
			}

			origin, dest, err := planEnds(ctx, ds, journeys, args[0], args[1])
			if err != nil {
				return err
			}

			res := formatter.WrapPlanResponse(origin, dest, journeys, time.Now())
			return formatter.NewResponseBuilder(true).Write(cmd.OutOrStdout(), format, res)
		},
	}
	cmd.Flags().IntVarP(&results, "results", "n", 0, "number of journeys (0 = configured default)")
	cmd.Flags().StringVarP(&format, "format", "f", formatter.FormatText, "output format: text|json|xml")
	return cmd
}

// planEnds returns the stations a plan ran between. Journeys carry the
// stations the planner resolved, so lookup is only consulted for an empty
// plan.
func planEnds(ctx context.Context, lookup network.StationLookup, journeys []planner.Journey, from, to string) (network.Station, network.Station, error) {
	if len(journeys) > 0 {
		return journeys[0].Origin, journeys[0].Destination, nil
	}
	ends := make([]network.Station, 2)
	for i, code := range []string{from, to} {
		code = network.NormalizeCode(code)
		s, ok, err := lookup.Station(ctx, code)
		if err != nil {
			return network.Station{}, network.Station{}, err
		}
		if !ok {
			return network.Station{}, network.Station{}, &planner.StationNotFoundError{Code: code}
		}
		ends[i] = s
	}
	return ends[0], ends[1], nil
}
