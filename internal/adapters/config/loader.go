// Package config provides the settings file loader for vm.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML and TOML settings files.
type Loader struct {
	logger    ports.Logger
	configDir func() (string, error)
	homeDir   func() (string, error)
}

// NewLoader creates a new Loader using the user's config and home directories.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:    logger,
		configDir: os.UserConfigDir,
		homeDir:   os.UserHomeDir,
	}
}

// Load reads the settings file at path. An empty path tries the default
// locations and yields zero Settings when none exists.
func (l *Loader) Load(path string) (domain.Settings, error) {
	if path != "" {
		if !fileExists(path) {
			return domain.Settings{}, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return l.loadFile(path)
	}

	dir, err := l.configDir()
	if err != nil {
		l.logger.Debug("no user config directory: " + err.Error())
		return domain.Settings{}, nil
	}

	for _, candidate := range domain.DefaultConfigPaths(dir) {
		if fileExists(candidate) {
			return l.loadFile(candidate)
		}
	}

	l.logger.Debug("no settings file found in " + filepath.Join(dir, domain.ConfigDirName))
	return domain.Settings{}, nil
}

func (l *Loader) loadFile(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file SettingsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = l.decodeTOML(path, data, &file)
	default:
		return domain.Settings{}, zerr.With(domain.ErrUnsupportedConfigFormat, "path", path)
	}
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	l.logger.Debug("loaded settings from " + path)

	settings, err := l.toSettings(&file)
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return settings, nil
}

func (l *Loader) decodeTOML(path string, data []byte, file *SettingsFile) error {
	meta, err := toml.Decode(string(data), file)
	if err != nil {
		return err
	}

	for _, key := range meta.Undecoded() {
		l.logger.Warn("unknown settings key " + key.String() + " in " + path)
	}
	return nil
}

func (l *Loader) toSettings(file *SettingsFile) (domain.Settings, error) {
	mode, err := domain.ParseMatchMode(file.Exclude.Match)
	if err != nil {
		return domain.Settings{}, err
	}

	roots := make([]string, 0, len(file.Roots))
	for _, root := range file.Roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		roots = append(roots, l.expandHome(root))
	}

	return domain.Settings{
		Python:          strings.TrimSpace(file.Python),
		Roots:           roots,
		Match:           mode,
		ExtraExclusions: file.Exclude.Extra,
	}, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func (l *Loader) expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := l.homeDir()
	if err != nil {
		l.logger.Warn("cannot expand " + path + ": " + err.Error())
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
