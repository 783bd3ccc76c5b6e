package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// ErrNotLoaded is returned by the collaborator methods before a network has
// been loaded.
var ErrNotLoaded = errors.New("source: network not loaded")

// LoadFunc produces a fresh network.
type LoadFunc func(ctx context.Context) (*network.Network, error)

// ReloadListener is called with the new network after every successful reload.
type ReloadListener func(n *network.Network)

type loaded struct {
	net *network.Network
	at  time.Time
}

// Dataset serves the current network to the planner and swaps it on Reload.
//
// Thread Safety:
//
//	Dataset is safe for concurrent use. Readers never block on a reload.
type Dataset struct {
	load LoadFunc
	log  *slog.Logger

	current atomic.Pointer[loaded]

	mu        sync.Mutex // serializes reloads and guards listeners
	listeners []ReloadListener
}

// NewDataset loads the network once and returns a dataset serving it.
// A nil logger uses slog.Default().
func NewDataset(ctx context.Context, load LoadFunc, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dataset{load: load, log: logger}
	if err := d.Reload(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

// NewStaticDataset serves n without a loader. Reload on it is a no-op.
func NewStaticDataset(n *network.Network) *Dataset {
	d := &Dataset{log: slog.Default()}
	d.current.Store(&loaded{net: n, at: time.Now()})
	return d
}

// OnReload registers fn to run after every successful reload.
func (d *Dataset) OnReload(fn ReloadListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, fn)
}

// Reload loads a new network and swaps it in. On failure the previous
// network stays in place and listeners are not called.
func (d *Dataset) Reload(ctx context.Context) error {
	if d.load == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	n, err := d.load(ctx)
	if err != nil {
		datasetReloads.WithLabelValues("error").Inc()
		d.log.Error("dataset reload failed", slog.String("error", err.Error()))
		return fmt.Errorf("source: reload: %w", err)
	}
	d.current.Store(&loaded{net: n, at: time.Now()})
	datasetReloads.WithLabelValues("ok").Inc()
	datasetStations.Set(float64(n.StationCount()))
	datasetConnections.Set(float64(n.ConnectionCount()))
	d.log.Info("dataset loaded",
		slog.Int("stations", n.StationCount()),
		slog.Int("connections", n.ConnectionCount()),
		slog.Duration("took", time.Since(start)),
	)

	for _, fn := range d.listeners {
		fn(n)
	}
	return nil
}

// Network returns the current network, or nil before the first load.
func (d *Dataset) Network() *network.Network {
	if l := d.current.Load(); l != nil {
		return l.net
	}
	return nil
}

// LoadedAt returns when the current network was loaded.
func (d *Dataset) LoadedAt() time.Time {
	if l := d.current.Load(); l != nil {
		return l.at
	}
	return time.Time{}
}

// Connections implements network.ConnectionSource.
func (d *Dataset) Connections(ctx context.Context) ([]network.Connection, error) {
	n := d.Network()
	if n == nil {
		return nil, ErrNotLoaded
	}
	return n.Connections(ctx)
}

// Station implements network.StationLookup.
func (d *Dataset) Station(ctx context.Context, code string) (network.Station, bool, error) {
	n := d.Network()
	if n == nil {
		return network.Station{}, false, ErrNotLoaded
	}
	return n.Station(ctx, code)
}
