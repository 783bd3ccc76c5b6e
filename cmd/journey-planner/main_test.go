package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

// writeConfig writes a config for dataset into a temp dir and returns its path.
func writeConfig(t *testing.T, dataset string) string {
	t.Helper()
	abs, err := filepath.Abs(dataset)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "network:\n  path: " + abs + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlanCommand_JSON(t *testing.T) {
	cfg := writeConfig(t, "../../testdata/network.yml")

	out, err := run(t, "--config", cfg, "plan", "har", "air", "-n", "2", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Journeys []planner.Journey `json:"journeys"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	require.NotEmpty(t, res.Journeys)
	assert.LessOrEqual(t, len(res.Journeys), 2)
	assert.Equal(t, 3, res.Journeys[0].TotalStops)
	assert.Equal(t, 1, res.Journeys[0].Changes)
}

func TestPlanCommand_Text(t *testing.T) {
	cfg := writeConfig(t, "../../testdata/network.yml")

	out, err := run(t, "--config", cfg, "plan", "OLD", "STA")
	require.NoError(t, err)
	assert.Contains(t, out, "Old Town (OLD) -> Stadium (STA)")
	assert.Contains(t, out, "1. 2 stops, 0 changes")
	assert.Contains(t, out, "Blue")
}

func TestPlanCommand_Errors(t *testing.T) {
	cfg := writeConfig(t, "../../testdata/network.yml")

	_, err := run(t, "--config", cfg, "plan", "ZZZ", "AIR")
	assert.ErrorIs(t, err, planner.ErrStationNotFound)

	_, err = run(t, "--config", cfg, "plan", "HAR")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "plan", "HAR", "AIR", "--format", "pdf")
	assert.Error(t, err)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "plan", "HAR", "AIR")
	assert.Error(t, err)
}

func TestStationsCommand(t *testing.T) {
	cfg := writeConfig(t, "../../testdata/network.yml")

	out, err := run(t, "--config", cfg, "stations")
	require.NoError(t, err)
	assert.Contains(t, out, "CEN")
	assert.Contains(t, out, "Central")
	assert.Equal(t, 8, bytes.Count([]byte(out), []byte("\n")))
}

func TestSnapshotCommand_RoundTrip(t *testing.T) {
	cfg := writeConfig(t, "../../testdata/network.yml")
	snap := filepath.Join(t.TempDir(), "network.gob")

	out, err := run(t, "--config", cfg, "snapshot", snap)
	require.NoError(t, err)
	assert.Contains(t, out, "8 stations")

	fromSnapshot := writeConfig(t, snap)
	want, err := run(t, "--config", cfg, "plan", "HAR", "AIR", "--format", "xml")
	require.NoError(t, err)
	got, err := run(t, "--config", fromSnapshot, "plan", "HAR", "AIR", "--format", "xml")
	require.NoError(t, err)

	// generatedAt differs between runs
	assert.Equal(t, stripGeneratedAt(want), stripGeneratedAt(got))
}

func stripGeneratedAt(xml string) string {
	start := bytes.Index([]byte(xml), []byte(`generatedAt="`))
	if start < 0 {
		return xml
	}
	end := start + len(`generatedAt="`) + len("2006-01-02T15:04:05Z") + 1
	return xml[:start] + xml[end:]
}

func TestPlanEnds(t *testing.T) {
	n, err := network.New(
		[]network.Station{{Code: "A", Name: "Alpha"}, {Code: "B", Name: "Bravo"}},
		[]network.Line{{ID: "L", Name: "L", Stops: []string{"A", "B"}}},
	)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("taken from journeys", func(t *testing.T) {
		from := network.Station{Code: "GONE", Name: "Closed Halt"}
		to := network.Station{Code: "B", Name: "Bravo"}
		j := planner.NewJourney([]planner.Segment{{Origin: from, Destination: to, Line: "L", Stops: 1}})
		j.Origin, j.Destination = from, to

		origin, dest, err := planEnds(ctx, n, []planner.Journey{j}, "gone", "b")
		require.NoError(t, err)
		assert.Equal(t, from, origin)
		assert.Equal(t, to, dest)
	})

	t.Run("looked up for an empty plan", func(t *testing.T) {
		origin, dest, err := planEnds(ctx, n, nil, "a", " a ")
		require.NoError(t, err)
		assert.Equal(t, "Alpha", origin.Name)
		assert.Equal(t, "Alpha", dest.Name)
	})

	t.Run("missing station", func(t *testing.T) {
		_, _, err := planEnds(ctx, n, nil, "a", "zz")
		assert.ErrorIs(t, err, planner.ErrStationNotFound)
	})
}
