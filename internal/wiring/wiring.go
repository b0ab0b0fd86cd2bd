// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/venv/internal/adapters/config"
	_ "go.trai.ch/venv/internal/adapters/fs"
	_ "go.trai.ch/venv/internal/adapters/logger"
	_ "go.trai.ch/venv/internal/adapters/python"
	_ "go.trai.ch/venv/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/venv/internal/app"
)
