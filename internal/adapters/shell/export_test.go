package shell

import (
	"io"

	"go.trai.ch/venv/internal/core/ports"
)

// NewLogWriter exposes logWriter for white-box testing.
func NewLogWriter(logger ports.Logger, prefix string) io.WriteCloser {
	return &logWriter{logger: logger, prefix: prefix}
}
