// Package app implements the application layer for vm.
package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Log formats accepted by ConfigureLogging.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// App represents the main application logic.
type App struct {
	scanner    ports.Scanner
	fs         ports.Filesystem
	toolchain  ports.Toolchain
	loader     ports.ConfigLoader
	logger     ports.Logger
	configPath string
	getwd      func() (string, error)

	settingsOnce sync.Once
	settings     domain.Settings
	settingsErr  error
}

// New creates a new App instance.
func New(
	scanner ports.Scanner,
	fs ports.Filesystem,
	toolchain ports.Toolchain,
	loader ports.ConfigLoader,
	log ports.Logger,
) *App {
	return &App{
		scanner:   scanner,
		fs:        fs,
		toolchain: toolchain,
		loader:    loader,
		logger:    log,
		getwd:     os.Getwd,
	}
}

// WithGetwd replaces the working directory lookup. Used for testing.
func (a *App) WithGetwd(getwd func() (string, error)) *App {
	a.getwd = getwd
	return a
}

// SetConfigPath selects an explicit settings file. It must be called before
// the first operation.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// logConfigurer is implemented by the slog logger adapter.
type logConfigurer interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

// ConfigureLogging applies the --verbose and --log-format flags.
func (a *App) ConfigureLogging(verbose bool, format string) error {
	lc, ok := a.logger.(logConfigurer)

	switch format {
	case "", LogFormatPretty:
		if ok {
			lc.SetJSON(false)
		}
	case LogFormatJSON:
		if ok {
			lc.SetJSON(true)
		}
	default:
		return zerr.With(domain.ErrInvalidLogFormat, "format", format)
	}

	if ok && verbose {
		lc.SetLevel(slog.LevelDebug)
	}
	return nil
}

// loadSettings reads the settings file once per App.
func (a *App) loadSettings() (domain.Settings, error) {
	a.settingsOnce.Do(func() {
		a.settings, a.settingsErr = a.loader.Load(a.configPath)
	})
	return a.settings, a.settingsErr
}

// defaultRoot is the filesystem root, or the root of the current volume on Windows.
func (a *App) defaultRoot() string {
	if runtime.GOOS != "windows" {
		return string(filepath.Separator)
	}
	cwd, err := a.getwd()
	if err != nil {
		return `C:\`
	}
	return filepath.VolumeName(cwd) + `\`
}

// ListOptions configuration for the List method.
type ListOptions struct {
	// Roots are the directories to search. Empty selects the configured roots or the filesystem root.
	Roots []string
	// Match overrides the configured exclusion match mode.
	Match string
	// Exclude adds exclusion fragments.
	Exclude []string
	// Visit is called for every directory entered, used for progress display.
	Visit func(dir string)
}

// RootFailure records a search root that could not be fully scanned.
type RootFailure struct {
	Root    string
	Missing bool
	Err     error
}

// ListResult is the outcome of List.
type ListResult struct {
	Roots        []string
	Environments []string
	Failures     []RootFailure
}

// List searches every root for virtual environments.
// Failures of single roots are collected in the result and do not stop the search.
func (a *App) List(ctx context.Context, opts ListOptions) (ListResult, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return ListResult{}, err
	}

	mode := settings.Match
	if opts.Match != "" {
		if mode, err = domain.ParseMatchMode(opts.Match); err != nil {
			return ListResult{}, err
		}
	}
	exclusions := domain.NewExclusions(mode, slices.Concat(settings.ExtraExclusions, opts.Exclude)...)

	roots := opts.Roots
	if len(roots) == 0 {
		roots = settings.Roots
	}
	if len(roots) == 0 {
		roots = []string{a.defaultRoot()}
	}

	var res ListResult
	seen := make(map[string]struct{})

	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			res.Failures = append(res.Failures, RootFailure{
				Root: root,
				Err:  zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", root),
			})
			continue
		}
		res.Roots = append(res.Roots, abs)

		exists, isDir, err := a.fs.Exists(abs)
		if err != nil {
			res.Failures = append(res.Failures, RootFailure{Root: root, Err: err})
			continue
		}
		if !exists || !isDir {
			res.Failures = append(res.Failures, RootFailure{
				Root:    root,
				Missing: true,
				Err:     zerr.With(domain.ErrDirectoryNotFound, "path", root),
			})
			continue
		}

		a.logger.Debug("scanning " + abs)
		for path, err := range a.scanner.Scan(ctx, abs, exclusions, opts.Visit) {
			if err != nil {
				res.Failures = append(res.Failures, RootFailure{Root: root, Err: err})
				continue
			}
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			res.Environments = append(res.Environments, path)
		}

		if ctx.Err() != nil {
			return res, zerr.Wrap(ctx.Err(), domain.ErrScanInterrupted.Error())
		}
	}

	return res, nil
}

// CreateOptions configuration for the Create method.
type CreateOptions struct {
	// Name is the directory name of the new environment.
	Name string
	// BaseDir is the parent directory. Empty selects the current directory.
	BaseDir string
	// Python overrides the configured interpreter.
	Python string
	// Venv is forwarded to the environment-creation tool.
	Venv domain.CreateOptions
}

// CreateResult is the outcome of Create.
type CreateResult struct {
	Name          string
	BaseDir       string
	Path          string
	AlreadyExists bool
}

// Create makes a new environment at BaseDir/Name.
// An existing target is left untouched and reported through AlreadyExists.
func (a *App) Create(ctx context.Context, opts CreateOptions) (CreateResult, error) {
	if err := domain.ValidateEnvironmentName(opts.Name); err != nil {
		return CreateResult{}, err
	}

	base := opts.BaseDir
	if base == "" {
		cwd, err := a.getwd()
		if err != nil {
			return CreateResult{}, zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
		}
		base = cwd
	}

	res := CreateResult{
		Name:    opts.Name,
		BaseDir: base,
		Path:    filepath.Join(base, opts.Name),
	}

	exists, isDir, err := a.fs.Exists(base)
	if err != nil {
		return res, err
	}
	if !exists || !isDir {
		return res, zerr.With(domain.ErrBaseDirNotFound, "path", base)
	}

	exists, _, err = a.fs.Exists(res.Path)
	if err != nil {
		return res, err
	}
	if exists {
		res.AlreadyExists = true
		return res, nil
	}

	python := opts.Python
	if python == "" {
		settings, err := a.loadSettings()
		if err != nil {
			return res, err
		}
		python = settings.Python
	}

	interpreter, err := a.toolchain.Interpreter(python)
	if err != nil {
		return res, err
	}

	a.logger.Debug("creating " + res.Path + " with " + interpreter)
	if err := a.toolchain.Create(ctx, interpreter, res.Path, opts.Venv); err != nil {
		return res, err
	}
	return res, nil
}

// DeleteOptions configuration for the Delete method.
type DeleteOptions struct {
	Path   string
	DryRun bool
}

// DeleteResult is the outcome of Delete.
type DeleteResult struct {
	Path   string
	DryRun bool
}

// Delete removes a validated environment. Directories without a marker are refused.
func (a *App) Delete(_ context.Context, opts DeleteOptions) (DeleteResult, error) {
	abs, err := a.fs.Validate(opts.Path)
	if err != nil {
		return DeleteResult{Path: opts.Path}, err
	}

	res := DeleteResult{Path: abs, DryRun: opts.DryRun}
	if opts.DryRun {
		return res, nil
	}

	if err := a.fs.Remove(abs); err != nil {
		return res, err
	}
	return res, nil
}

// Info inspects a validated environment. Failing subprocess queries and size
// computation degrade into placeholders instead of failing the inspection.
func (a *App) Info(ctx context.Context, path string) (domain.Environment, error) {
	abs, err := a.fs.Validate(path)
	if err != nil {
		return domain.Environment{Path: path}, err
	}

	env := domain.Environment{Path: abs}

	if marker, err := a.fs.ReadMarker(abs); err != nil {
		a.logger.Debug("pyvenv.cfg unreadable: " + err.Error())
	} else {
		env.Marker = marker
	}

	version, err := a.toolchain.Version(ctx, abs)
	if err != nil {
		a.logger.Debug("interpreter version unavailable: " + err.Error())
		version = domain.Unavailable
	}
	env.PythonVersion = version

	env.Packages, env.PackagesErr = a.toolchain.Packages(ctx, abs)
	if env.PackagesErr != nil {
		a.logger.Debug("package list unavailable: " + env.PackagesErr.Error())
		env.Packages = nil
	}

	env.SizeBytes, env.SizeErr = a.fs.Size(abs)

	return env, nil
}
