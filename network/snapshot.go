package network

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// snapshot is the gob payload. Derived connections are rebuilt on decode.
type snapshot struct {
	Stations []Station
	Lines    []Line
}

// SerializeNetwork encodes a Network to bytes using gob encoding.
// This is useful for disk-based caching to avoid re-parsing GTFS static data.
//
// Example:
//
//	idx, _ := gtfs.NewIndexFromFile("feed.zip")
//	data, err := network.SerializeNetwork(idx.Network())
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile("/path/to/cache/network.gob", data, 0644)
func SerializeNetwork(n *Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeNetworkToWriter(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeNetwork decodes a Network from gob bytes.
//
// Example:
//
//	data, _ := os.ReadFile("/path/to/cache/network.gob")
//	net, err := network.DeserializeNetwork(data)
//	if err != nil {
//	    // Cache is corrupted or invalid, parse the feed again
//	}
func DeserializeNetwork(data []byte) (*Network, error) {
	return DeserializeNetworkFromReader(bytes.NewReader(data))
}

// SerializeNetworkToFile writes a Network to a file using gob encoding.
func SerializeNetworkToFile(n *Network, path string) error {
	data, err := SerializeNetwork(n)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DeserializeNetworkFromFile reads a Network from a gob file.
func DeserializeNetworkFromFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return DeserializeNetwork(data)
}

// SerializeNetworkToWriter writes a Network to an io.Writer using gob encoding.
// This provides flexibility for custom storage backends (S3, MinIO, etc.).
func SerializeNetworkToWriter(n *Network, w io.Writer) error {
	payload := snapshot{Stations: n.stations, Lines: n.lines}
	if err := gob.NewEncoder(w).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode network: %w", err)
	}
	return nil
}

// DeserializeNetworkFromReader reads a Network from an io.Reader using gob encoding.
func DeserializeNetworkFromReader(r io.Reader) (*Network, error) {
	var payload snapshot
	if err := gob.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode network: %w", err)
	}
	return New(payload.Stations, payload.Lines)
}
