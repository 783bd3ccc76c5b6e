package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// WriteText prints an itinerary listing, one block per journey.
func (rb *ResponseBuilder) WriteText(w io.Writer, res *PlanResponse) error {
	if _, err := fmt.Fprintf(w, "%s -> %s\n", stationLabel(res.Origin), stationLabel(res.Destination)); err != nil {
		return err
	}
	if len(res.Journeys) == 0 {
		_, err := fmt.Fprintln(w, "no journeys found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, j := range res.Journeys {
		fmt.Fprintf(tw, "\n%d. %s, %s\n", i+1, plural(j.TotalStops, "stop"), plural(j.Changes, "change"))
		for _, s := range j.Segments {
			fmt.Fprintf(tw, "   %s\t%s\t->\t%s\t%s\n", s.Line, stationLabel(s.Origin), stationLabel(s.Destination), plural(s.Stops, "stop"))
		}
	}
	return tw.Flush()
}

func stationLabel(s network.Station) string {
	if s.Name == "" || s.Name == s.Code {
		return s.Code
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Code)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
