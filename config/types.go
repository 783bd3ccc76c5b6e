package config

import "time"

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" validate:"gte=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

// NetworkConfig names the dataset the network is built from
type NetworkConfig struct {
	Path     string        `yaml:"path" validate:"required"`
	Format   string        `yaml:"format" validate:"omitempty,oneof=gtfs yaml snapshot"`
	Watch    bool          `yaml:"watch"`
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

// PlannerConfig contains search budgets and result limits
type PlannerConfig struct {
	MaxDepth       int  `yaml:"max_depth" validate:"gte=0"`
	MaxIterations  int  `yaml:"max_iterations" validate:"gte=0"`
	Oversample     int  `yaml:"oversample" validate:"gte=0"`
	DefaultResults int  `yaml:"default_results" validate:"gte=0,ltefield=MaxResults"`
	MaxResults     int  `yaml:"max_results" validate:"gte=0"`
	DisableCache   bool `yaml:"disable_cache"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Network NetworkConfig `yaml:"network"`
	Planner PlannerConfig `yaml:"planner"`
	Log     LogConfig     `yaml:"log"`
}
