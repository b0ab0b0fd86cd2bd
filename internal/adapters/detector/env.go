// Package detector provides environment detection for progress display selection.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ProgressMode selects how scan progress is shown on standard error.
type ProgressMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto ProgressMode = iota
	// ModeLive rewrites a single status line while scanning.
	ModeLive
	// ModeQuiet shows no progress.
	ModeQuiet
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// DetectEnvironment returns the recommended progress mode for w.
// Live progress needs w to be a terminal and no CI environment variable set.
func DetectEnvironment(w io.Writer) ProgressMode {
	f, ok := w.(fder)
	isTTY := ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int

	if !isTTY || isCI() {
		return ModeQuiet
	}
	return ModeLive
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveMode applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "live", "on", "off", "quiet", or empty.
func ResolveMode(autoDetected ProgressMode, userFlag string) ProgressMode {
	switch userFlag {
	case "live", "on":
		return ModeLive
	case "off", "quiet":
		return ModeQuiet
	default:
		return autoDetected
	}
}
