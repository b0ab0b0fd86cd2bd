package python_test

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/venv/internal/adapters/python"
	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func lookPathFrom(found map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if p, ok := found[name]; ok {
			return p, nil
		}
		return "", exec.ErrNotFound
	}
}

func TestToolchain_Interpreter(t *testing.T) {
	tests := []struct {
		name      string
		found     map[string]string
		preferred string
		want      string
		wantErr   bool
	}{
		{
			name:  "prefers python3",
			found: map[string]string{"python3": "/usr/bin/python3", "python": "/usr/bin/python"},
			want:  "/usr/bin/python3",
		},
		{
			name:  "falls back to python",
			found: map[string]string{"python": "/usr/bin/python"},
			want:  "/usr/bin/python",
		},
		{
			name:      "configured interpreter wins",
			found:     map[string]string{"python3": "/usr/bin/python3", "python3.11": "/opt/py/python3.11"},
			preferred: "python3.11",
			want:      "/opt/py/python3.11",
		},
		{
			name:      "configured interpreter missing",
			found:     map[string]string{"python3": "/usr/bin/python3"},
			preferred: "python2",
			wantErr:   true,
		},
		{
			name:    "nothing on PATH",
			found:   map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tc := python.NewWithPlatform(mocks.NewMockRunner(ctrl), lookPathFrom(tt.found), "linux")

			got, err := tc.Interpreter(tt.preferred)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), domain.ErrInterpreterNotFound.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToolchain_Create(t *testing.T) {
	tests := []struct {
		name     string
		opts     domain.CreateOptions
		wantArgs []string
	}{
		{
			name:     "defaults",
			wantArgs: []string{"-m", "venv", "/work/env"},
		},
		{
			name: "all options",
			opts: domain.CreateOptions{SystemSitePackages: true, WithoutPip: true, Prompt: "demo"},
			wantArgs: []string{
				"-m", "venv", "--system-site-packages", "--without-pip", "--prompt", "demo", "/work/env",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRunner(ctrl)
			runner.EXPECT().
				Run(gomock.Any(), domain.Command{Name: "/usr/bin/python3", Args: tt.wantArgs}).
				Return(domain.RunResult{}, nil)

			tc := python.NewWithPlatform(runner, lookPathFrom(nil), "linux")
			require.NoError(t, tc.Create(t.Context(), "/usr/bin/python3", "/work/env", tt.opts))
		})
	}
}

func TestToolchain_Create_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	runErr := zerr.With(zerr.Wrap(errors.New("exit status 1"), domain.ErrCommandFailed.Error()), "stderr", "Error: [Errno 13] Permission denied")
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.RunResult{ExitCode: 1}, runErr)

	tc := python.NewWithPlatform(runner, lookPathFrom(nil), "linux")
	err := tc.Create(t.Context(), "python3", "/work/env", domain.CreateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCreateFailed.Error())
}

func TestToolchain_Version(t *testing.T) {
	env := filepath.FromSlash("/work/env")

	tests := []struct {
		name    string
		goos    string
		wantExe string
		result  domain.RunResult
		runErr  error
		want    string
		wantErr bool
	}{
		{
			name:    "stdout",
			goos:    "linux",
			wantExe: filepath.Join(env, "bin", "python"),
			result:  domain.RunResult{Stdout: "Python 3.12.1\n"},
			want:    "Python 3.12.1",
		},
		{
			name:    "legacy interpreter prints on stderr",
			goos:    "linux",
			wantExe: filepath.Join(env, "bin", "python"),
			result:  domain.RunResult{Stderr: "Python 2.7.18\n"},
			want:    "Python 2.7.18",
		},
		{
			name:    "windows layout",
			goos:    "windows",
			wantExe: filepath.Join(env, "Scripts", "python.exe"),
			result:  domain.RunResult{Stdout: "Python 3.11.4\r\n"},
			want:    "Python 3.11.4",
		},
		{
			name:    "empty output",
			goos:    "linux",
			wantExe: filepath.Join(env, "bin", "python"),
			wantErr: true,
		},
		{
			name:    "broken interpreter",
			goos:    "linux",
			wantExe: filepath.Join(env, "bin", "python"),
			runErr:  errors.New("exec: no such file"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRunner(ctrl)
			runner.EXPECT().
				Run(gomock.Any(), domain.Command{Name: tt.wantExe, Args: []string{"--version"}}).
				Return(tt.result, tt.runErr)

			tc := python.NewWithPlatform(runner, lookPathFrom(nil), tt.goos)
			got, err := tc.Version(t.Context(), env)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), domain.ErrVersionQueryFailed.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToolchain_Packages(t *testing.T) {
	env := filepath.FromSlash("/work/env")
	pip := domain.Command{
		Name: filepath.Join(env, "bin", "pip"),
		Args: []string{"list", "--format=json", "--disable-pip-version-check"},
	}

	t.Run("parses json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), pip).Return(domain.RunResult{
			Stdout: `[{"name": "pip", "version": "24.0"}, {"name": "requests", "version": "2.31.0"}]`,
		}, nil)

		pkgs, err := python.NewWithPlatform(runner, lookPathFrom(nil), "linux").Packages(t.Context(), env)

		require.NoError(t, err)
		assert.Equal(t, []domain.Package{
			{Name: "pip", Version: "24.0"},
			{Name: "requests", Version: "2.31.0"},
		}, pkgs)
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), pip).Return(domain.RunResult{Stdout: "[]\n"}, nil)

		pkgs, err := python.NewWithPlatform(runner, lookPathFrom(nil), "linux").Packages(t.Context(), env)

		require.NoError(t, err)
		assert.NotNil(t, pkgs)
		assert.Empty(t, pkgs)
	})

	t.Run("invalid output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), pip).Return(domain.RunResult{Stdout: "pip 24.0 from ..."}, nil)

		_, err := python.NewWithPlatform(runner, lookPathFrom(nil), "linux").Packages(t.Context(), env)

		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrPackageParseFailed.Error())
	})

	t.Run("pip missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), pip).Return(domain.RunResult{ExitCode: -1}, errors.New("no such file"))

		_, err := python.NewWithPlatform(runner, lookPathFrom(nil), "linux").Packages(t.Context(), env)

		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrPackageQueryFailed.Error())
	})
}
