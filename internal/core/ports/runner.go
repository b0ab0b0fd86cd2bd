// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/venv/internal/core/domain"
)

// Runner runs external tools and captures their output.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run starts cmd, waits for it and returns its exit code and captured output.
	//
	// A non-zero exit returns both the result and an error wrapping domain.ErrCommandFailed.
	// A process that cannot be spawned returns an error wrapping domain.ErrCommandStartFailed.
	Run(ctx context.Context, cmd domain.Command) (domain.RunResult, error)
}
