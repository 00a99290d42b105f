package cmd

import (
	"github.com/spf13/cobra"

	"github.com/preflightci/preflight/internal/checks/shell"
)

var condaYesCmd = &cobra.Command{
	Use:   "conda-yes [files...]",
	Short: "Verify that interactive conda commands in shell scripts pass -y",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, files []string) {
		runChecks(newArgs(), files, shell.CheckCondaYes)
	},
}
