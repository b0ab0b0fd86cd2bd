package ports

import (
	"context"

	"go.trai.ch/venv/internal/core/domain"
)

// Toolchain drives the Python tooling that creates and describes environments.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Interpreter locates the base interpreter. A non-empty preferred wins over discovery.
	Interpreter(preferred string) (string, error)

	// Create runs the environment-creation module of interpreter for target.
	Create(ctx context.Context, interpreter, target string, opts domain.CreateOptions) error

	// Version asks the interpreter inside env for its version string.
	Version(ctx context.Context, env string) (string, error)

	// Packages asks the package manager inside env for installed distributions.
	Packages(ctx context.Context, env string) ([]domain.Package, error)
}
