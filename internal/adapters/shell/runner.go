// Package shell provides a process runner for the external Python tooling.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Run waits for output pipes after the process was
// killed, e.g. when a grandchild keeps stderr open.
const waitDelay = 2 * time.Second

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts cmd, waits for it to exit and returns the captured output.
// Child stderr is also forwarded line by line to the debug log.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.RunResult, error) {
	var stdout, stderr bytes.Buffer
	stderrLog := &logWriter{logger: r.logger, prefix: cmd.Name + ": "}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are built by the toolchain adapter
	c.Dir = cmd.Dir
	c.WaitDelay = waitDelay
	c.Stdout = &stdout
	c.Stderr = io.MultiWriter(&stderr, stderrLog)

	r.logger.Debug("running " + cmd.String())

	err := c.Run()
	_ = stderrLog.Close()

	result := domain.RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		r.logger.Debug(cmd.Name + " exited with status 0")
		return result, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		result.ExitCode = -1
		return result, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", cmd.String())
	}

	result.ExitCode = exitErr.ExitCode()
	r.logger.Debug(cmd.Name + " exited with status " + strconv.Itoa(result.ExitCode))

	failure := zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", cmd.String())
	failure = zerr.With(failure, "exit_code", result.ExitCode)
	if msg := strings.TrimSpace(result.Stderr); msg != "" {
		failure = zerr.With(failure, "stderr", msg)
	}
	return result, failure
}

// logWriter splits written bytes into lines and sends each to the debug log.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line that has no newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Debug(w.prefix + msg)
}
