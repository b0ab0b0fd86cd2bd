package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const bytesPerMB = 1024 * 1024

// Package is a single installed distribution reported by the package manager.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// MarkerConfig holds the key/value settings of a pyvenv.cfg file.
type MarkerConfig map[string]string

// Home returns the directory of the base interpreter the environment was created from.
func (c MarkerConfig) Home() string {
	return c["home"]
}

// Version returns the interpreter version recorded at creation time.
// Newer Python releases write "version", some older ones "version_info".
func (c MarkerConfig) Version() string {
	if v := c["version"]; v != "" {
		return v
	}
	return c["version_info"]
}

// SystemSitePackages reports whether the environment can see the base site-packages.
func (c MarkerConfig) SystemSitePackages() bool {
	return strings.EqualFold(c["include-system-site-packages"], "true")
}

// Environment is the transient record produced by inspecting a virtual environment.
type Environment struct {
	// Path is the absolute path of the environment directory.
	Path string

	// PythonVersion is the interpreter version string, or Unavailable.
	PythonVersion string

	// Packages lists the installed distributions. It is nil when PackagesErr is set.
	Packages []Package

	// PackagesErr records why the package list could not be retrieved.
	PackagesErr error

	// Marker is the parsed pyvenv.cfg, nil if it could not be read.
	Marker MarkerConfig

	// SizeBytes is the total size of all regular files below Path.
	SizeBytes int64

	// SizeErr records why the size could not be fully computed.
	SizeErr error
}

// FormatSize renders a byte count as megabytes with two-decimal precision.
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/bytesPerMB)
}

// ValidateEnvironmentName checks that name can be joined onto a base directory
// without escaping it.
func ValidateEnvironmentName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return zerr.With(ErrInvalidEnvironmentName, "name", name)
	case strings.ContainsRune(name, filepath.Separator), strings.ContainsRune(name, '/'):
		return zerr.With(zerr.With(ErrInvalidEnvironmentName, "name", name), "reason", "name must not contain a path separator")
	}
	return nil
}
