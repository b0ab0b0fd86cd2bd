package python

import "go.trai.ch/venv/internal/core/ports"

// NewWithPlatform creates a Toolchain with an injected PATH lookup and target OS.
func NewWithPlatform(runner ports.Runner, lookPath func(string) (string, error), goos string) *Toolchain {
	return &Toolchain{runner: runner, lookPath: lookPath, goos: goos}
}
