package ports

import (
	"context"
	"iter"

	"go.trai.ch/venv/internal/core/domain"
)

// Scanner discovers virtual environments below a search root.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan walks root depth-first and yields every directory that holds a marker file.
	//
	// Excluded directories and the inside of matched environments are not visited.
	// A root that does not exist yields a single error and nothing else.
	// visit, when non-nil, is called synchronously for every directory entered.
	Scan(ctx context.Context, root string, exclusions domain.Exclusions, visit func(dir string)) iter.Seq2[string, error]
}
