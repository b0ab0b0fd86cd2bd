package shell_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/venv/internal/adapters/shell"
	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on sh")
	}

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return shell.NewRunner(mockLogger)
}

func TestRunner_Run_CapturesOutput(t *testing.T) {
	runner := newRunner(t)

	res, err := runner.Run(t.Context(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
}

func TestRunner_Run_WorkingDir(t *testing.T) {
	runner := newRunner(t)
	dir := t.TempDir()

	res, err := runner.Run(t.Context(), domain.Command{Name: "sh", Args: []string{"-c", "pwd"}, Dir: dir})

	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(filepath.Clean(res.Stdout[:len(res.Stdout)-1]))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	runner := newRunner(t)

	res, err := runner.Run(t.Context(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo 'Error: no good' >&2; exit 3"},
	})

	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "Error: no good\n", res.Stderr)
	assert.Contains(t, err.Error(), domain.ErrCommandFailed.Error())
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	runner := newRunner(t)

	res, err := runner.Run(t.Context(), domain.Command{Name: "definitely-not-a-real-binary-xyz"})

	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
	assert.Contains(t, err.Error(), domain.ErrCommandStartFailed.Error())
}

func TestRunner_Run_ContextCancelled(t *testing.T) {
	runner := newRunner(t)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := runner.Run(ctx, domain.Command{Name: "sh", Args: []string{"-c", "sleep 5"}})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestRunner_Run_LogsStderrLines(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on sh")
	}

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("running sh -c printf 'a\\nb' >&2")
	mockLogger.EXPECT().Debug("sh: a")
	mockLogger.EXPECT().Debug("sh: b")
	mockLogger.EXPECT().Debug("sh exited with status 0")

	_, err := shell.NewRunner(mockLogger).Run(t.Context(), domain.Command{
		Name: "sh",
		Args: []string{"-c", `printf 'a\nb' >&2`},
	})
	require.NoError(t, err)
}

func TestLogWriter_SplitsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Debug("pip: first"),
		mockLogger.EXPECT().Debug("pip: second"),
		mockLogger.EXPECT().Debug("pip: tail"),
	)

	w := shell.NewLogWriter(mockLogger, "pip: ")
	_, _ = w.Write([]byte("fir"))
	_, _ = w.Write([]byte("st\r\nsecond\n\n"))
	_, _ = w.Write([]byte("tail"))
	require.NoError(t, w.Close())
}
