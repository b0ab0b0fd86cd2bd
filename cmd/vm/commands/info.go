package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/venv/internal/ui/report"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Show details of a virtual environment",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return nil
			}

			printer := report.New(cmd.OutOrStdout())
			env, err := c.app.Info(cmd.Context(), args[0])
			if err != nil {
				printer.Error(err)
				return nil
			}
			printer.Info(env)
			return nil
		},
	}
}
