// Package fs provides file system adapters for discovering, inspecting and
// removing virtual environments.
package fs

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scanner implements ports.Scanner with filepath.WalkDir.
type Scanner struct {
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan yields every directory below root (root included) that holds a marker file.
// Matched environments and excluded directories are not descended into.
func (s *Scanner) Scan(
	ctx context.Context,
	root string,
	exclusions domain.Exclusions,
	visit func(dir string),
) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			yield("", zerr.With(domain.ErrDirectoryNotFound, "path", root))
			return
		}

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if err != nil {
				if path == root {
					return err
				}
				s.logger.Debug("skipping unreadable directory " + path + ": " + err.Error())
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.IsDir() {
				return nil
			}

			if exclusions.Excludes(root, path) {
				return filepath.SkipDir
			}

			if visit != nil {
				visit(path)
			}

			if !hasMarker(path) {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return filepath.SkipDir
		})

		if walkErr != nil {
			yield("", zerr.With(zerr.Wrap(walkErr, domain.ErrScanFailed.Error()), "path", root))
		}
	}
}

// hasMarker reports whether dir holds a regular marker file.
func hasMarker(dir string) bool {
	info, err := os.Stat(domain.MarkerPath(dir))
	return err == nil && info.Mode().IsRegular()
}
