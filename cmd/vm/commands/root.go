// Package commands implements the CLI commands for the vm environment manager.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/venv/internal/app"
	"go.trai.ch/venv/internal/build"
	"go.trai.ch/venv/internal/core/domain"
)

// CLI represents the command line interface for vm.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetConfigPath(path string)
	ConfigureLogging(verbose bool, format string) error
	List(ctx context.Context, opts app.ListOptions) (app.ListResult, error)
	Create(ctx context.Context, opts app.CreateOptions) (app.CreateResult, error)
	Delete(ctx context.Context, opts app.DeleteOptions) (app.DeleteResult, error)
	Info(ctx context.Context, path string) (domain.Environment, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	cobra.EnableCaseInsensitive = true

	rootCmd := &cobra.Command{
		Use:           "vm",
		Short:         "Find, create, inspect and delete Python virtual environments",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unknown command: %s\n", args[0])
			}
			return cmd.Help()
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Declared without shorthand so -v stays free for --verbose.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("config", "", "Settings file (default: <user config dir>/vm/config.yaml)")
	rootCmd.PersistentFlags().String("python", "", "Interpreter used to create environments")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logs on stderr")
	rootCmd.PersistentFlags().String("log-format", app.LogFormatPretty, "Log format: pretty or json")
	rootCmd.PersistentFlags().String("progress", "auto", "Scan progress: auto, on, or off")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		logFormat, _ := cmd.Flags().GetString("log-format")

		c.app.SetConfigPath(configPath)
		return c.app.ConfigureLogging(verbose, logFormat)
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newDeleteCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
