package report

import (
	"io"
	"strconv"

	"github.com/muesli/termenv"
	"go.trai.ch/venv/internal/ui/output"
	"go.trai.ch/venv/internal/ui/style"
)

const (
	// progressEvery is the number of visited directories between redraws.
	progressEvery = 64
	maxPathWidth  = 60
)

// Progress is a single status line rewritten in place while a scan runs.
// A disabled Progress writes nothing.
type Progress struct {
	out     *termenv.Output
	enabled bool
	visited int
	drawn   bool
}

// NewProgress creates a status line on w.
func NewProgress(w io.Writer, enabled bool) *Progress {
	return &Progress{out: output.New(w), enabled: enabled}
}

// Visit records a directory entered by the scanner.
func (p *Progress) Visit(dir string) {
	p.visited++
	if !p.enabled || p.visited%progressEvery != 1 {
		return
	}

	msg := style.Dot + " scanned " + strconv.Itoa(p.visited) + " directories  " + truncateLeft(dir, maxPathWidth)
	styled := p.out.String(msg).Foreground(termenv.RGBColor(string(style.Slate)))

	_, _ = p.out.WriteString("\r")
	p.out.ClearLine()
	_, _ = p.out.WriteString(styled.String())
	p.drawn = true
}

// Done erases the status line.
func (p *Progress) Done() {
	if !p.drawn {
		return
	}
	_, _ = p.out.WriteString("\r")
	p.out.ClearLine()
	p.drawn = false
}

// truncateLeft keeps the last width runes of s.
func truncateLeft(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return "…" + string(r[len(r)-width+1:])
}
