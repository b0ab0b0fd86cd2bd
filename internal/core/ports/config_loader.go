package ports

import "go.trai.ch/venv/internal/core/domain"

// ConfigLoader defines the interface for loading user settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path. An empty path selects the default
	// locations, in which case a missing file yields zero Settings and no error.
	Load(path string) (domain.Settings, error)
}
