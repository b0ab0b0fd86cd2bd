package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/venv/internal/adapters/detector" //nolint:depguard // Terminal detection for the progress line
	"go.trai.ch/venv/internal/app"
	"go.trai.ch/venv/internal/ui/report"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [dir...]",
		Short: "Search directories for virtual environments",
		Long: "Search the given directories, the configured roots, or the whole filesystem " +
			"for directories containing a pyvenv.cfg file.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			match, _ := cmd.Flags().GetString("match")
			exclude, _ := cmd.Flags().GetStringArray("exclude")
			progressFlag, _ := cmd.Flags().GetString("progress")

			stderr := cmd.ErrOrStderr()
			mode := detector.ResolveMode(detector.DetectEnvironment(stderr), progressFlag)
			progress := report.NewProgress(stderr, mode == detector.ModeLive)

			printer := report.New(cmd.OutOrStdout())
			printer.Searching()

			res, err := c.app.List(cmd.Context(), app.ListOptions{
				Roots:   args,
				Match:   match,
				Exclude: exclude,
				Visit:   progress.Visit,
			})
			progress.Done()

			if err != nil {
				if len(res.Environments) > 0 || len(res.Failures) > 0 {
					printer.List(res)
				}
				printer.Error(err)
				return nil
			}
			printer.List(res)
			return nil
		},
	}
	cmd.Flags().String("match", "", "Exclusion match mode: substring or segment")
	cmd.Flags().StringArray("exclude", nil, "Additional directory fragment to skip (repeatable)")
	return cmd
}
