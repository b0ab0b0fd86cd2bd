package fs_test

import (
	"iter"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/venv/internal/core/domain"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// makeEnv creates dir with an empty marker file and returns dir.
func makeEnv(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		t.Fatal(err)
	}
	writeFile(t, domain.MarkerPath(dir), "home = /usr/bin\n")
	return dir
}

func makeDir(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		t.Fatal(err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		t.Fatal(err)
	}
}

func collect(seq iter.Seq2[string, error]) (paths []string, errs []error) {
	for path, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, errs
}
