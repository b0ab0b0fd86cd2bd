package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// MatchMode selects how exclusion fragments are compared against traversed paths.
type MatchMode string

const (
	// MatchSubstring excludes a directory when a fragment occurs anywhere in its full path.
	MatchSubstring MatchMode = "substring"

	// MatchSegment excludes a directory when its own name equals a fragment.
	MatchSegment MatchMode = "segment"
)

// DefaultExclusionFragments are never scanned: environment executable directories
// and recycle bins.
var DefaultExclusionFragments = []string{"bin", "Scripts", "RECYCLE.BIN"}

// ParseMatchMode converts a user supplied mode. The empty string selects MatchSubstring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchSegment:
		return MatchSegment, nil
	default:
		return "", zerr.With(ErrInvalidMatchMode, "mode", s)
	}
}

// Exclusions decides which directories a scan skips together with their subtrees.
type Exclusions struct {
	Fragments []string
	Mode      MatchMode
}

// NewExclusions returns the default fragments plus extra, matched with mode.
func NewExclusions(mode MatchMode, extra ...string) Exclusions {
	fragments := slices.Clone(DefaultExclusionFragments)
	for _, f := range extra {
		if f != "" && !slices.Contains(fragments, f) {
			fragments = append(fragments, f)
		}
	}
	if mode == "" {
		mode = MatchSubstring
	}
	return Exclusions{Fragments: fragments, Mode: mode}
}

// Excludes reports whether dir, reached while scanning root, must be skipped.
//
// In substring mode the full path is tested, the root included, so scanning
// /home/robin finds nothing. In segment mode only directories strictly below
// root are tested, against their own name with a leading "$" removed
// (Windows names the recycle bin "$RECYCLE.BIN").
func (e Exclusions) Excludes(root, dir string) bool {
	if e.Mode == MatchSegment {
		if filepath.Clean(dir) == filepath.Clean(root) {
			return false
		}
		name := strings.TrimPrefix(filepath.Base(dir), "$")
		return slices.Contains(e.Fragments, name)
	}

	for _, f := range e.Fragments {
		if strings.Contains(dir, f) {
			return true
		}
	}
	return false
}
