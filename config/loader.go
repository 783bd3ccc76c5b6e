package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "JOURNEY_PLANNER_CONFIG"

// Defaults
const (
	DefaultPort            = 16181
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultDebounce        = 500 * time.Millisecond
)

// ErrNoConfigFile is returned when none of the candidate paths exists.
var ErrNoConfigFile = errors.New("config: no configuration file found")

// DefaultPaths returns the files LoadAppConfig tries when given none.
func DefaultPaths() []string {
	paths := []string{"config.yml", "./configs/config.yml"}
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append([]string{p}, paths...)
	}
	return paths
}

// LoadAppConfig loads and validates the application configuration from the
// first readable path. With no paths, DefaultPaths is used.
func LoadAppConfig(paths ...string) (*AppConfig, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", p, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", p, err)
		}
		return cfg, nil
	}
	return nil, fmt.Errorf("%w (tried %v)", ErrNoConfigFile, paths)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills zero values.
func (c *AppConfig) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Network.Debounce == 0 {
		c.Network.Debounce = DefaultDebounce
	}
	d := planner.DefaultOptions()
	if c.Planner.MaxDepth == 0 {
		c.Planner.MaxDepth = d.MaxDepth
	}
	if c.Planner.MaxIterations == 0 {
		c.Planner.MaxIterations = d.MaxIterations
	}
	if c.Planner.Oversample == 0 {
		c.Planner.Oversample = d.Oversample
	}
	if c.Planner.MaxResults == 0 {
		c.Planner.MaxResults = d.MaxResults
	}
	if c.Planner.DefaultResults == 0 {
		c.Planner.DefaultResults = min(d.DefaultResults, c.Planner.MaxResults)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the struct tags of every section.
func (c *AppConfig) Validate() error {
	return validator.New().Struct(c)
}

// Options converts the planner section into planner options.
func (p PlannerConfig) Options(logger *slog.Logger) planner.Options {
	return planner.Options{
		MaxDepth:       p.MaxDepth,
		MaxIterations:  p.MaxIterations,
		Oversample:     p.Oversample,
		DefaultResults: p.DefaultResults,
		MaxResults:     p.MaxResults,
		Logger:         logger,
	}
}
