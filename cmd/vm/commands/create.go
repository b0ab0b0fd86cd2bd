package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/venv/internal/app"
	"go.trai.ch/venv/internal/core/domain"
	"go.trai.ch/venv/internal/ui/report"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name> [base_dir]",
		Short: "Create a virtual environment",
		Long:  "Create a virtual environment named <name> in base_dir, or in the current directory.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			python, _ := cmd.Flags().GetString("python")
			systemSite, _ := cmd.Flags().GetBool("system-site-packages")
			withoutPip, _ := cmd.Flags().GetBool("without-pip")
			prompt, _ := cmd.Flags().GetString("prompt")

			opts := app.CreateOptions{
				Name:   args[0],
				Python: python,
				Venv: domain.CreateOptions{
					SystemSitePackages: systemSite,
					WithoutPip:         withoutPip,
					Prompt:             prompt,
				},
			}
			if len(args) == 2 {
				opts.BaseDir = args[1]
			}

			printer := report.New(cmd.OutOrStdout())
			res, err := c.app.Create(cmd.Context(), opts)
			if err != nil {
				printer.Error(err)
				return nil
			}
			printer.Created(res)
			return nil
		},
	}
	cmd.Flags().Bool("system-site-packages", false, "Give the environment access to the base site-packages")
	cmd.Flags().Bool("without-pip", false, "Skip installing pip into the environment")
	cmd.Flags().String("prompt", "", "Prompt prefix shown when the environment is active")
	return cmd
}
