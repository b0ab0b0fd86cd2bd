// Package python drives the CPython tooling: interpreter discovery, the venv
// module and the package manager inside an environment.
package python

import (
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/core/ports"
	"go.trai.ch/zerr"
)

// interpreterCandidates are looked up on PATH, in order, when no interpreter is configured.
var interpreterCandidates = []string{"python3", "python"}

// Toolchain implements ports.Toolchain on top of a ports.Runner.
type Toolchain struct {
	runner   ports.Runner
	lookPath func(file string) (string, error)
	goos     string
}

// New creates a new Toolchain for the current platform.
func New(runner ports.Runner) *Toolchain {
	return &Toolchain{
		runner:   runner,
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
	}
}

// Interpreter resolves the base interpreter used to create environments.
// A non-empty preferred is resolved on its own, otherwise python3 then python are tried.
func (t *Toolchain) Interpreter(preferred string) (string, error) {
	if preferred != "" {
		path, err := t.lookPath(preferred)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrInterpreterNotFound.Error()), "python", preferred)
		}
		return path, nil
	}

	for _, name := range interpreterCandidates {
		if path, err := t.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", zerr.With(domain.ErrInterpreterNotFound, "searched", strings.Join(interpreterCandidates, ", "))
}

// Create runs "<interpreter> -m venv [options] <target>".
func (t *Toolchain) Create(ctx context.Context, interpreter, target string, opts domain.CreateOptions) error {
	args := []string{"-m", "venv"}
	if opts.SystemSitePackages {
		args = append(args, "--system-site-packages")
	}
	if opts.WithoutPip {
		args = append(args, "--without-pip")
	}
	if opts.Prompt != "" {
		args = append(args, "--prompt", opts.Prompt)
	}
	args = append(args, target)

	if _, err := t.runner.Run(ctx, domain.Command{Name: interpreter, Args: args}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCreateFailed.Error()), "path", target)
	}
	return nil
}

// Version asks the interpreter inside env for "--version".
// Interpreters older than 3.4 print the version on stderr.
func (t *Toolchain) Version(ctx context.Context, env string) (string, error) {
	res, err := t.runner.Run(ctx, domain.Command{
		Name: t.executable(env, "python"),
		Args: []string{"--version"},
	})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrVersionQueryFailed.Error())
	}

	version := strings.TrimSpace(res.Stdout)
	if version == "" {
		version = strings.TrimSpace(res.Stderr)
	}
	if version == "" {
		return "", zerr.With(domain.ErrVersionQueryFailed, "reason", "empty output")
	}
	return version, nil
}

// Packages lists installed distributions with "pip list --format=json".
func (t *Toolchain) Packages(ctx context.Context, env string) ([]domain.Package, error) {
	res, err := t.runner.Run(ctx, domain.Command{
		Name: t.executable(env, "pip"),
		Args: []string{"list", "--format=json", "--disable-pip-version-check"},
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageQueryFailed.Error())
	}

	var pkgs []domain.Package
	if err := json.Unmarshal([]byte(res.Stdout), &pkgs); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageParseFailed.Error())
	}
	if pkgs == nil {
		pkgs = []domain.Package{}
	}
	return pkgs, nil
}

// executable returns the path of a console script inside env.
func (t *Toolchain) executable(env, name string) string {
	if t.goos == "windows" {
		return filepath.Join(env, "Scripts", name+".exe")
	}
	return filepath.Join(env, "bin", name)
}
