package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/journey-planner/config"
	"github.com/theoremus-urban-solutions/journey-planner/gtfs"
	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// Dataset formats
const (
	FormatGTFS     = "gtfs"
	FormatYAML     = "yaml"
	FormatSnapshot = "snapshot"
)

// ErrUnknownFormat is returned when the format cannot be derived from the path.
var ErrUnknownFormat = errors.New("source: unknown dataset format")

// DetectFormat derives the dataset format from the file extension. Remote
// http(s) locations are always GTFS feeds.
func DetectFormat(path string) (string, error) {
	if isRemote(path) {
		return FormatGTFS, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return FormatGTFS, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".gob", ".snapshot":
		return FormatSnapshot, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load builds the network described by cfg.
func Load(ctx context.Context, cfg config.NetworkConfig) (*network.Network, error) {
	format := cfg.Format
	if format == "" {
		var err error
		if format, err = DetectFormat(cfg.Path); err != nil {
			return nil, err
		}
	}

	switch format {
	case FormatGTFS:
		return loadGTFS(ctx, cfg.Path)
	case FormatYAML:
		return network.LoadYAMLFile(cfg.Path)
	case FormatSnapshot:
		return network.DeserializeNetworkFromFile(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Loader returns a function loading cfg, suitable for NewDataset.
func Loader(cfg config.NetworkConfig) LoadFunc {
	return func(ctx context.Context) (*network.Network, error) {
		return Load(ctx, cfg)
	}
}

func loadGTFS(ctx context.Context, path string) (*network.Network, error) {
	var (
		index *gtfs.Index
		err   error
	)
	if isRemote(path) {
		index, err = gtfs.NewIndexFromURL(ctx, path, nil)
	} else {
		index, err = gtfs.NewIndexFromFile(path)
	}
	if err != nil {
		return nil, err
	}
	return index.Network()
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
