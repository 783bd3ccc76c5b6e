package source_test

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/journey-planner/config"
	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
	"github.com/theoremus-urban-solutions/journey-planner/source"
)

const exampleNetwork = "../testdata/network.yml"

func smallNetwork(t *testing.T, codes ...string) *network.Network {
	t.Helper()
	stations := make([]network.Station, len(codes))
	for i, c := range codes {
		stations[i] = network.Station{Code: c, Name: c}
	}
	n, err := network.New(stations, []network.Line{{ID: "L", Name: "L", Stops: codes}})
	require.NoError(t, err)
	return n
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"feeds/sofia.zip", source.FormatGTFS},
		{"https://example.org/gtfs", source.FormatGTFS},
		{"network.YML", source.FormatYAML},
		{"network.yaml", source.FormatYAML},
		{"cache/network.gob", source.FormatSnapshot},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := source.DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := source.DetectFormat("network.csv")
	assert.ErrorIs(t, err, source.ErrUnknownFormat)
}

func TestLoad_YAML(t *testing.T) {
	n, err := source.Load(context.Background(), config.NetworkConfig{Path: exampleNetwork})
	require.NoError(t, err)

	s, ok, err := n.Station(context.Background(), "cen")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Central", s.Name)
}

func TestLoad_Snapshot(t *testing.T) {
	want := smallNetwork(t, "A", "B", "C")
	path := filepath.Join(t.TempDir(), "network.gob")
	require.NoError(t, network.SerializeNetworkToFile(want, path))

	got, err := source.Load(context.Background(), config.NetworkConfig{Path: path})
	require.NoError(t, err)
	assert.Equal(t, want.Lines(), got.Lines())
}

func TestLoad_GTFS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range map[string]string{
		"stops.txt":      "stop_id,stop_name\nS1,One\nS2,Two\n",
		"routes.txt":     "route_id,route_short_name\nR,9\n",
		"trips.txt":      "route_id,trip_id\nR,T\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence\nT,S1,1\nT,S2,2\n",
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	n, err := source.Load(context.Background(), config.NetworkConfig{Path: path, Format: source.FormatGTFS})
	require.NoError(t, err)
	assert.Equal(t, 2, n.StationCount())
	assert.Equal(t, 1, n.ConnectionCount())
}

func TestLoad_Errors(t *testing.T) {
	_, err := source.Load(context.Background(), config.NetworkConfig{Path: "network.txt"})
	assert.ErrorIs(t, err, source.ErrUnknownFormat)

	_, err = source.Load(context.Background(), config.NetworkConfig{Path: "network.yml", Format: "xml"})
	assert.ErrorIs(t, err, source.ErrUnknownFormat)

	_, err = source.Load(context.Background(), config.NetworkConfig{Path: filepath.Join(t.TempDir(), "missing.yml")})
	assert.Error(t, err)
}

func TestDataset_ReloadSwapsAndNotifies(t *testing.T) {
	first := smallNetwork(t, "A", "B")
	second := smallNetwork(t, "A", "B", "C")
	var calls atomic.Int32
	load := func(context.Context) (*network.Network, error) {
		if calls.Add(1) == 1 {
			return first, nil
		}
		return second, nil
	}

	ds, err := source.NewDataset(context.Background(), load, nil)
	require.NoError(t, err)
	assert.Same(t, first, ds.Network())
	loadedAt := ds.LoadedAt()
	assert.False(t, loadedAt.IsZero())

	var notified *network.Network
	ds.OnReload(func(n *network.Network) { notified = n })

	require.NoError(t, ds.Reload(context.Background()))
	assert.Same(t, second, ds.Network())
	assert.Same(t, second, notified)
	assert.False(t, ds.LoadedAt().Before(loadedAt))

	_, ok, err := ds.Station(context.Background(), "C")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDataset_FailedReloadKeepsNetwork(t *testing.T) {
	good := smallNetwork(t, "A", "B")
	boom := errors.New("disk on fire")
	var calls atomic.Int32
	load := func(context.Context) (*network.Network, error) {
		if calls.Add(1) == 1 {
			return good, nil
		}
		return nil, boom
	}

	ds, err := source.NewDataset(context.Background(), load, nil)
	require.NoError(t, err)
	notified := false
	ds.OnReload(func(*network.Network) { notified = true })

	err = ds.Reload(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Same(t, good, ds.Network())
	assert.False(t, notified)

	conns, err := ds.Connections(context.Background())
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestNewDataset_InitialLoadFails(t *testing.T) {
	boom := errors.New("no such feed")
	_, err := source.NewDataset(context.Background(), func(context.Context) (*network.Network, error) {
		return nil, boom
	}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestStaticDataset(t *testing.T) {
	n := smallNetwork(t, "A", "B")
	ds := source.NewStaticDataset(n)

	require.NoError(t, ds.Reload(context.Background()))
	assert.Same(t, n, ds.Network())
}

func TestDataset_ReloadInvalidatesCache(t *testing.T) {
	before := smallNetwork(t, "A", "B")
	after := smallNetwork(t, "A", "X", "B")
	var calls atomic.Int32
	ds, err := source.NewDataset(context.Background(), func(context.Context) (*network.Network, error) {
		if calls.Add(1) == 1 {
			return before, nil
		}
		return after, nil
	}, nil)
	require.NoError(t, err)

	cache := planner.NewCache(planner.New(ds, ds, planner.Options{}), planner.Options{})
	ds.OnReload(func(*network.Network) { cache.Invalidate() })

	journeys, err := cache.Plan(context.Background(), "A", "B", 1)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, 1, journeys[0].TotalStops)

	require.NoError(t, ds.Reload(context.Background()))

	journeys, err = cache.Plan(context.Background(), "A", "B", 1)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, 2, journeys[0].TotalStops)
}

type countingReloader struct{ calls atomic.Int32 }

func (c *countingReloader) Reload(context.Context) error {
	c.calls.Add(1)
	return nil
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "network.yml")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	r := &countingReloader{}
	w, err := source.NewWatcher(path, r, 50*time.Millisecond, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	for i := range 5 {
		require.NoError(t, os.WriteFile(path, []byte{'v', byte('2' + i)}, 0o600))
	}

	require.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "network.yml")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	r := &countingReloader{}
	w, err := source.NewWatcher(path, r, 20*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("x"), 0o600))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, r.calls.Load())
}
