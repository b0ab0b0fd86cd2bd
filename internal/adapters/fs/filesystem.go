package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filesystem implements ports.Filesystem on the local disk.
type Filesystem struct{}

// NewFilesystem creates a new Filesystem.
func NewFilesystem() *Filesystem {
	return &Filesystem{}
}

// Exists reports whether path exists and whether it is a directory.
func (f *Filesystem) Exists(path string) (exists, isDir bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, false, nil
		}
		return false, false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return true, info.IsDir(), nil
}

// Validate resolves path and checks that it is a directory holding a regular marker file.
func (f *Filesystem) Validate(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", path)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", zerr.With(domain.ErrEnvironmentNotFound, "path", abs)
	case err != nil:
		return "", zerr.With(zerr.Wrap(err, "failed to stat path"), "path", abs)
	case !info.IsDir():
		return "", zerr.With(zerr.With(domain.ErrNotAnEnvironment, "path", abs), "reason", "not a directory")
	}

	if !hasMarker(abs) {
		return "", zerr.With(zerr.With(domain.ErrNotAnEnvironment, "path", abs), "reason", domain.MarkerFileName+" missing")
	}

	return abs, nil
}

// ReadMarker parses the pyvenv.cfg of the environment at dir.
func (f *Filesystem) ReadMarker(dir string) (domain.MarkerConfig, error) {
	path := domain.MarkerPath(dir)

	file, err := os.Open(path) //nolint:gosec // path is built from a validated environment
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMarkerReadFailed.Error()), "path", path)
	}
	defer func() { _ = file.Close() }()

	cfg, err := parseMarker(file)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMarkerReadFailed.Error()), "path", path)
	}
	return cfg, nil
}

// Size sums the sizes of the regular files below dir. Symlinks are not followed.
// Unreadable entries are skipped, the first failure is returned with the partial total.
func (f *Filesystem) Size(dir string) (int64, error) {
	var (
		total    int64
		firstErr error
	)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if firstErr == nil {
				firstErr = zerr.With(err, "path", path)
			}
			if path == dir {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			if firstErr == nil {
				firstErr = zerr.With(err, "path", path)
			}
			return nil
		}
		total += info.Size()
		return nil
	})

	if firstErr == nil {
		firstErr = walkErr
	}
	if firstErr != nil {
		return total, zerr.With(zerr.Wrap(firstErr, domain.ErrSizeFailed.Error()), "path", dir)
	}
	return total, nil
}

// Remove deletes dir and everything below it.
func (f *Filesystem) Remove(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDeleteFailed.Error()), "path", dir)
	}
	return nil
}
