package domain

import "path/filepath"

const (
	// MarkerFileName is the sentinel file whose presence makes a directory a virtual environment.
	MarkerFileName = "pyvenv.cfg"

	// ConfigDirName is the name of the settings directory under the user config dir.
	ConfigDirName = "vm"

	// ConfigFileName is the default YAML settings file name.
	ConfigFileName = "config.yaml"

	// ConfigTOMLFileName is the TOML alternative to ConfigFileName.
	ConfigTOMLFileName = "config.toml"

	// Unavailable is the placeholder shown when a subprocess query fails.
	Unavailable = "unavailable"
)

// DefaultConfigPaths returns the candidate settings files below configDir, in lookup order.
func DefaultConfigPaths(configDir string) []string {
	dir := filepath.Join(configDir, ConfigDirName)
	return []string{
		filepath.Join(dir, ConfigFileName),
		filepath.Join(dir, ConfigTOMLFileName),
	}
}

// MarkerPath returns the path of the marker file inside dir.
func MarkerPath(dir string) string {
	return filepath.Join(dir, MarkerFileName)
}
