// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file (config.yml by default, or the
// file named by JOURNEY_PLANNER_CONFIG) and validated using struct tags.
// Missing values take the defaults applied by ApplyDefaults.
package config
