package gtfs

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
)

// NewIndexFromFile loads a GTFS zip from a local path.
func NewIndexFromFile(path string) (*Index, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("gtfs: open %s: %w", path, err)
	}
	defer zr.Close()
	return newIndexFromZip(&zr.Reader)
}

// NewIndexFromBytes loads a GTFS zip held in memory.
func NewIndexFromBytes(data []byte) (*Index, error) {
	return NewIndexFromReader(bytes.NewReader(data), int64(len(data)))
}

// NewIndexFromReader loads a GTFS zip from any io.ReaderAt.
func NewIndexFromReader(r io.ReaderAt, size int64) (*Index, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("gtfs: open zip: %w", err)
	}
	return newIndexFromZip(zr)
}

// NewIndexFromURL downloads a GTFS zip to a temporary file and loads it.
// A nil client uses http.DefaultClient.
func NewIndexFromURL(ctx context.Context, url string, client *http.Client) (*Index, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("gtfs: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gtfs: download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gtfs: download %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp("", "gtfs-*.zip")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("gtfs: download %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	return NewIndexFromFile(tmp.Name())
}

func newIndexFromZip(zr *zip.Reader) (*Index, error) {
	g := NewIndex()
	for _, f := range zr.File {
		switch strings.ToLower(f.Name) {
		case "agency.txt", "routes.txt", "trips.txt", "stops.txt", "stop_times.txt":
			if err := g.consumeCSV(f); err != nil {
				return nil, fmt.Errorf("gtfs: read %s: %w", f.Name, err)
			}
		}
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Index) consumeCSV(f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	name := strings.ToLower(f.Name)
	g.seenFiles[name] = true
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	switch name {
	case "agency.txt":
		agName := idx("agency_name")
		if len(rec) > 1 && g.agencyName == "" {
			g.agencyName = field(rec[1], agName)
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		rLN := idx("route_long_name")
		if rID < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			g.routes[field(row, rID)] = route{
				shortName: field(row, rSN),
				longName:  field(row, rLN),
			}
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		if rID < 0 || tID < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			g.tripToRoute[field(row, tID)] = field(row, rID)
		}
	case "stops.txt":
		sID := idx("stop_id")
		sCode := idx("stop_code")
		sN := idx("stop_name")
		parent := idx("parent_station")
		if sID < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			g.stops[field(row, sID)] = stop{
				code:   field(row, sCode),
				name:   field(row, sN),
				parent: field(row, parent),
			}
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		if tID < 0 || sID < 0 || sq < 0 {
			return nil
		}
		type stopTime struct {
			stop string
			seq  int
		}
		tmp := map[string][]stopTime{}
		for _, row := range rec[1:] {
			seq, err := strconv.Atoi(field(row, sq))
			if err != nil {
				return fmt.Errorf("trip %s: bad stop_sequence %q", field(row, tID), field(row, sq))
			}
			trip := field(row, tID)
			tmp[trip] = append(tmp[trip], stopTime{stop: field(row, sID), seq: seq})
		}
		for trip, arr := range tmp {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
			seqStops := make([]string, 0, len(arr))
			for _, v := range arr {
				seqStops = append(seqStops, v.stop)
			}
			g.tripStopSeq[trip] = seqStops
		}
	}
	return nil
}

// field returns row[i] trimmed, or "" when the column is absent or the row
// is short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
