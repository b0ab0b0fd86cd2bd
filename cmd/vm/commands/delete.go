package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/venv/internal/app"
	"go.trai.ch/venv/internal/ui/report"
)

func (c *CLI) newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a virtual environment",
		Long:  "Delete the virtual environment at <path>. Directories without a pyvenv.cfg file are refused.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return nil
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			printer := report.New(cmd.OutOrStdout())
			res, err := c.app.Delete(cmd.Context(), app.DeleteOptions{Path: args[0], DryRun: dryRun})
			if err != nil {
				printer.Error(err)
				return nil
			}
			printer.Deleted(res)
			return nil
		},
	}
	cmd.Flags().Bool("dry-run", false, "Report what would be deleted without removing anything")
	return cmd
}
