package domain

import "go.trai.ch/zerr"

var (
	// ErrDirectoryNotFound is returned when a search root does not exist.
	ErrDirectoryNotFound = zerr.New("directory does not exist")

	// ErrScanFailed is returned when a search root cannot be traversed.
	ErrScanFailed = zerr.New("failed to scan directory")

	// ErrBaseDirNotFound is returned when the base directory for a new environment does not exist.
	ErrBaseDirNotFound = zerr.New("base directory does not exist")

	// ErrInvalidEnvironmentName is returned when an environment name is not a single path element.
	ErrInvalidEnvironmentName = zerr.New("invalid environment name")

	// ErrEnvironmentNotFound is returned when a target path does not exist.
	ErrEnvironmentNotFound = zerr.New("virtual environment not found")

	// ErrNotAnEnvironment is returned when a directory lacks the pyvenv.cfg marker.
	ErrNotAnEnvironment = zerr.New("not a valid virtual environment")

	// ErrInterpreterNotFound is returned when no Python interpreter can be located.
	ErrInterpreterNotFound = zerr.New("python interpreter not found")

	// ErrCreateFailed is returned when the environment-creation subprocess fails.
	ErrCreateFailed = zerr.New("error creating virtual environment")

	// ErrDeleteFailed is returned when an environment tree cannot be removed.
	ErrDeleteFailed = zerr.New("error deleting virtual environment")

	// ErrSizeFailed is returned when the size of an environment cannot be computed.
	ErrSizeFailed = zerr.New("failed to compute environment size")

	// ErrMarkerReadFailed is returned when pyvenv.cfg cannot be read.
	ErrMarkerReadFailed = zerr.New("failed to read pyvenv.cfg")

	// ErrPathResolveFailed is returned when a path cannot be made absolute.
	ErrPathResolveFailed = zerr.New("failed to resolve path")

	// ErrWorkingDirFailed is returned when the current working directory cannot be determined.
	ErrWorkingDirFailed = zerr.New("failed to determine current directory")

	// ErrCommandStartFailed is returned when an external command cannot be spawned.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrVersionQueryFailed is returned when the environment interpreter does not report a version.
	ErrVersionQueryFailed = zerr.New("failed to query interpreter version")

	// ErrPackageQueryFailed is returned when installed packages cannot be listed.
	ErrPackageQueryFailed = zerr.New("failed to list installed packages")

	// ErrPackageParseFailed is returned when the package manager output cannot be parsed.
	ErrPackageParseFailed = zerr.New("failed to parse package list")

	// ErrConfigNotFound is returned when an explicitly requested settings file does not exist.
	ErrConfigNotFound = zerr.New("settings file not found")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrUnsupportedConfigFormat is returned for settings files that are neither YAML nor TOML.
	ErrUnsupportedConfigFormat = zerr.New("unsupported settings file format, expected .yaml, .yml or .toml")

	// ErrInvalidLogFormat is returned when --log-format names an unknown format.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrScanInterrupted is returned when a scan is stopped by a signal.
	ErrScanInterrupted = zerr.New("scan interrupted")

	// ErrInvalidMatchMode is returned when an exclusion match mode is not recognized.
	ErrInvalidMatchMode = zerr.New("invalid match mode, expected 'substring' or 'segment'")
)
