package fs

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/venv/internal/core/domain"
)

// parseMarker reads pyvenv.cfg "key = value" lines.
// Blank lines, lines without '=' and '#' or ';' comments are ignored. Keys are lower-cased.
func parseMarker(r io.Reader) (domain.MarkerConfig, error) {
	cfg := domain.MarkerConfig{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		cfg[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}
