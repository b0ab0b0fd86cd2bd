package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/venv/internal/ui/output"
	"go.trai.ch/venv/internal/ui/style"
)

// PrettyHandler renders records as single lines prefixed with a level icon.
// Record attributes are appended as key=value; vm never binds attributes or
// groups on the handler itself.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Level
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var b strings.Builder
	b.WriteString(icon)
	b.WriteString(r.Message)
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteString(" " + attr.Key + "=" + attr.Value.String())
		return true
	})

	styled := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns h unchanged.
func (h *PrettyHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup returns h unchanged.
func (h *PrettyHandler) WithGroup(string) slog.Handler { return h }

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", style.Red
	case level >= slog.LevelWarn:
		return style.Warning + " ", style.Yellow
	case level < slog.LevelInfo:
		return style.Dot + " ", style.Iris
	default:
		return "", style.Slate
	}
}
