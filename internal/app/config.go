package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GridPath    string // hcl/yaml files
	ModulesPath string // manifests + handlers

	LogFormat      string
	LogLevel       string
	DescribeRunner string
	Watch          bool
}

// NewConfig validates a raw Config. A grid path is required unless the user
// only asked for a runner description.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" && cfg.DescribeRunner == "" {
		return nil, errors.New("GridPath is a required configuration field and cannot be empty")
	}

	if cfg.Watch && cfg.GridPath == "" {
		return nil, errors.New("watch mode requires a grid path")
	}

	return &cfg, nil
}
