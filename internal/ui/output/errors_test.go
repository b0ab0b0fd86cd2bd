package output_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/venv/internal/ui/output"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := output.CollectErrorEntriesExported(tt.err)
			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			assert.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message mismatch at index %d", i)
			}
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
	outer := zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")

	entries := output.CollectErrorEntriesExported(outer)

	assert.Len(t, entries, 2)
	assert.Equal(t, "outer_val", entries[0].Metadata["outer_key"])
	assert.Equal(t, "inner_val", entries[1].Metadata["inner_key"])
	assert.NotContains(t, entries[0].Metadata, "inner_key")
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []output.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []output.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "three entries",
			entries: []output.ErrorEntry{
				{Message: "first"},
				{Message: "second"},
				{Message: "third"},
			},
			want: "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata on cause",
			entries: []output.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"cause_key": "cause_val"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      cause_key: cause_val",
		},
		{
			name:    "multiline message",
			entries: []output.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name: "multiline metadata value",
			entries: []output.ErrorEntry{
				{Message: "command failed", Metadata: map[string]any{"stderr": "Error: boom\nhint: retry\n"}},
			},
			want: "Error: command failed\n       stderr: Error: boom\n         hint: retry",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []output.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": "m"}},
			},
			want: "Error: error\n       alpha: a\n       mike: m\n       zebra: z",
		},
		{
			name:    "empty entries",
			entries: []output.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, output.FormatErrorEntriesExported(tt.entries))
		})
	}
}

func TestFormatError(t *testing.T) {
	inner := zerr.With(zerr.New("pyvenv.cfg missing"), "path", "/data/x")
	err := zerr.With(zerr.Wrap(inner, "not a valid virtual environment"), "exit_code", 2)

	want := "Error: not a valid virtual environment\n" +
		"       exit_code: 2\n\n" +
		"  Caused by:\n" +
		"    → pyvenv.cfg missing\n" +
		"      path: /data/x"
	assert.Equal(t, want, output.FormatError(err))
}
