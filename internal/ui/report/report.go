// Package report renders operation results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/venv/internal/app"
	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/ui/output"
	"go.trai.ch/venv/internal/ui/style"
)

const labelWidth = 22

// Printer writes human-readable operation results.
type Printer struct {
	out *termenv.Output
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{out: output.New(w)}
}

// Searching announces a scan, which can take long on large trees.
func (p *Printer) Searching() {
	p.line("Searching for virtual environments, this may take a while...")
}

// List prints per-root failures followed by the environments found.
func (p *Printer) List(res app.ListResult) {
	for _, f := range res.Failures {
		if f.Missing {
			p.warn("Directory does not exist: " + f.Root)
			continue
		}
		p.Error(f.Err)
	}

	if len(res.Environments) == 0 {
		p.line("No virtual environments found.")
		return
	}

	p.line(fmt.Sprintf("Found %d virtual environment(s):", len(res.Environments)))
	for i, env := range res.Environments {
		p.line("  " + strconv.Itoa(i+1) + ". " + env)
	}
}

// Created prints the outcome of a create operation.
func (p *Printer) Created(res app.CreateResult) {
	if res.AlreadyExists {
		p.warn(fmt.Sprintf("Virtual environment '%s' already exists in %s.", res.Name, res.BaseDir))
		return
	}
	p.success(fmt.Sprintf("Virtual environment '%s' created at %s.", res.Name, res.Path))
}

// Deleted prints the outcome of a delete operation.
func (p *Printer) Deleted(res app.DeleteResult) {
	if res.DryRun {
		p.warn("Virtual environment at " + res.Path + " would be deleted (dry run).")
		return
	}
	p.success("Virtual environment at " + res.Path + " deleted.")
}

// Info prints the details of an inspected environment.
func (p *Printer) Info(env domain.Environment) {
	p.line("Virtual environment: " + env.Path)
	p.field("Python version", env.PythonVersion)
	p.field("Base interpreter", orUnavailable(env.Marker.Home()))
	p.field("Created with", orUnavailable(env.Marker.Version()))
	if env.Marker != nil {
		p.field("System site packages", yesNo(env.Marker.SystemSitePackages()))
	}

	size := domain.FormatSize(env.SizeBytes)
	if env.SizeErr != nil {
		size += " (incomplete, some files could not be read)"
	}
	p.field("Size", size)

	switch {
	case env.PackagesErr != nil:
		p.field("Packages", domain.Unavailable)
	case len(env.Packages) == 0:
		p.field("Packages", "none")
	default:
		p.line(fmt.Sprintf("  Packages (%d):", len(env.Packages)))
		for _, pkg := range env.Packages {
			p.line("    - " + pkg.Name + " " + pkg.Version)
		}
	}
}

// Error prints a failed operation with its cause chain.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	p.colored(style.Cross+" "+output.FormatError(err), style.Red)
}

func (p *Printer) field(label, value string) {
	p.line("  " + padRight(label+":", labelWidth) + value)
}

func (p *Printer) success(msg string) {
	p.colored(style.Check+" "+msg, style.Green)
}

func (p *Printer) warn(msg string) {
	p.colored(style.Warning+" "+msg, style.Yellow)
}

func (p *Printer) colored(msg string, color lipgloss.Color) {
	styled := p.out.String(msg).Foreground(termenv.RGBColor(string(color)))
	_, _ = p.out.WriteString(styled.String() + "\n")
}

func (p *Printer) line(msg string) {
	_, _ = p.out.WriteString(msg + "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func orUnavailable(s string) string {
	if s == "" {
		return domain.Unavailable
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
