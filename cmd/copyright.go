package cmd

import (
	"github.com/spf13/cobra"

	"github.com/preflightci/preflight/internal/checks/copyright"
)

var copyrightYear int

var copyrightCmd = &cobra.Command{
	Use:   "copyright [files...]",
	Short: "Verify that copyright headers are present and up to date",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, files []string) {
		args := newArgs()
		args.CurrentYear = copyrightYear
		runChecks(args, files, copyright.Check)
	},
}

func init() {
	copyrightCmd.Flags().IntVar(&copyrightYear, "year", 0,
		"year headers must reach (default: the current year)")
}
