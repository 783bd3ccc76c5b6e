package network_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

func sampleNetwork(t *testing.T) *network.Network {
	t.Helper()
	stations := []network.Station{
		{Code: "a", Name: "Alpha"},
		{Code: "B", Name: "Bravo"},
		{Code: "C", Name: "Charlie"},
		{Code: "D", Name: "Delta"},
		{Code: "E", Name: "Echo"},
	}
	lines := []network.Line{
		{ID: "R1", Name: "R1", Stops: []string{"A", "B", "C"}},
		{ID: "R2", Name: "R2", Stops: []string{"b", "D", "E"}},
	}
	n, err := network.New(stations, lines)
	require.NoError(t, err)
	return n
}

func TestNew_DerivesAdjacentConnections(t *testing.T) {
	n := sampleNetwork(t)

	conns, err := n.Connections(context.Background())
	require.NoError(t, err)
	require.Len(t, conns, 4)

	first := conns[0]
	assert.Equal(t, "A", first.From.Code)
	assert.Equal(t, "Alpha", first.From.Name)
	assert.Equal(t, "B", first.To.Code)
	assert.Equal(t, "R1", first.LineID)
	assert.Equal(t, 1, first.FromPosition)
	assert.Equal(t, 2, first.ToPosition)

	last := conns[3]
	assert.Equal(t, "D", last.From.Code)
	assert.Equal(t, "E", last.To.Code)
	assert.Equal(t, "R2", last.LineName)
	assert.Equal(t, 2, last.FromPosition)
	assert.Equal(t, 3, last.ToPosition)
}

func TestNew_Errors(t *testing.T) {
	stations := []network.Station{{Code: "A", Name: "Alpha"}, {Code: "B", Name: "Bravo"}}

	tests := []struct {
		name     string
		stations []network.Station
		lines    []network.Line
		want     error
	}{
		{
			name:     "duplicate station",
			stations: append(stations, network.Station{Code: "a", Name: "Again"}),
			want:     network.ErrDuplicateStation,
		},
		{
			name:     "unknown stop",
			stations: stations,
			lines:    []network.Line{{ID: "X", Stops: []string{"A", "Z"}}},
			want:     network.ErrUnknownStop,
		},
		{
			name:     "short line",
			stations: stations,
			lines:    []network.Line{{ID: "X", Stops: []string{"A"}}},
			want:     network.ErrShortLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := network.New(tt.stations, tt.lines)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStation_CaseInsensitive(t *testing.T) {
	n := sampleNetwork(t)
	ctx := context.Background()

	s, ok, err := n.Station(ctx, " a ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, network.Station{Code: "A", Name: "Alpha"}, s)

	_, ok, err = n.Station(ctx, "ZZZ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNew_LineNameDefaultsToID(t *testing.T) {
	n, err := network.New(
		[]network.Station{{Code: "A", Name: "Alpha"}, {Code: "B", Name: "Bravo"}},
		[]network.Line{{ID: "L9", Stops: []string{"A", "B"}}},
	)
	require.NoError(t, err)
	assert.Equal(t, "L9", n.Lines()[0].Name)
}

func TestParseYAML(t *testing.T) {
	doc := `
stations:
  - code: A
    name: Alpha
  - code: B
    name: Bravo
  - code: C
    name: Charlie
lines:
  - id: R1
    name: Red
    stops: [A, B, C]
`
	n, err := network.ParseYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, n.StationCount())
	assert.Equal(t, 2, n.ConnectionCount())
	assert.Equal(t, "Red", n.Lines()[0].Name)
}

func TestParseYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed", doc: "stations: [[["},
		{name: "no lines", doc: "stations:\n  - code: A\n    name: Alpha\n"},
		{name: "station without name", doc: "stations:\n  - code: A\nlines:\n  - id: R\n    stops: [A, A]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := network.LoadYAML(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	n := sampleNetwork(t)

	var buf bytes.Buffer
	require.NoError(t, network.SerializeNetworkToWriter(n, &buf))
	back, err := network.DeserializeNetworkFromReader(&buf)
	require.NoError(t, err)

	want, _ := n.Connections(context.Background())
	got, _ := back.Connections(context.Background())
	assert.Equal(t, want, got)
	assert.Equal(t, n.Stations(), back.Stations())
}

func TestSnapshot_File(t *testing.T) {
	n := sampleNetwork(t)
	path := filepath.Join(t.TempDir(), "network.gob")

	require.NoError(t, network.SerializeNetworkToFile(n, path))
	back, err := network.DeserializeNetworkFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, n.ConnectionCount(), back.ConnectionCount())

	_, err = network.DeserializeNetwork([]byte("not gob"))
	assert.Error(t, err)
}
