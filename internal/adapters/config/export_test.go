package config

import "go.trai.ch/venv/internal/core/ports"

// NewLoaderWithDirs creates a Loader with fixed config and home directories.
func NewLoaderWithDirs(logger ports.Logger, configDir, homeDir string) *Loader {
	return &Loader{
		logger:    logger,
		configDir: func() (string, error) { return configDir, nil },
		homeDir:   func() (string, error) { return homeDir, nil },
	}
}
