package network

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a hand-maintained network description.
type File struct {
	Stations []Station `yaml:"stations" validate:"required,min=1,dive"`
	Lines    []Line    `yaml:"lines" validate:"required,min=1,dive"`
}

// LoadYAMLFile reads a network description from path.
func LoadYAMLFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("network: read %s: %w", path, err)
	}
	return ParseYAML(data)
}

// LoadYAML reads a network description from r.
func LoadYAML(r io.Reader) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("network: read yaml: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes and validates a network description.
func ParseYAML(data []byte) (*Network, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("network: decode yaml: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("network: invalid description: %w", err)
	}
	return New(f.Stations, f.Lines)
}
