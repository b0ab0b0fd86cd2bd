package ports

import "go.trai.ch/venv/internal/core/domain"

// Filesystem answers the questions the operations ask about paths on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// Exists reports whether path exists and whether it is a directory.
	Exists(path string) (exists, isDir bool, err error)

	// Validate returns the absolute path of an existing environment.
	// It fails with domain.ErrEnvironmentNotFound or domain.ErrNotAnEnvironment.
	Validate(path string) (string, error)

	// ReadMarker parses the pyvenv.cfg of the environment at dir.
	ReadMarker(dir string) (domain.MarkerConfig, error)

	// Size sums the sizes of all regular files below dir.
	// On error it still returns the total of what could be read.
	Size(dir string) (int64, error)

	// Remove deletes dir and everything below it.
	Remove(dir string) error
}
