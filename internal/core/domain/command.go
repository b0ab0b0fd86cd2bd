package domain

import "strings"

// Command describes a single external process invocation.
type Command struct {
	// Name is the executable, either absolute or resolved through PATH.
	Name string

	// Args are passed to the executable verbatim.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command line for logs and error metadata.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// RunResult is the outcome of a finished process.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CreateOptions are forwarded to the environment-creation tool.
type CreateOptions struct {
	SystemSitePackages bool
	WithoutPip         bool
	Prompt             string
}
