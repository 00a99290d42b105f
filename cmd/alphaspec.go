package cmd

import (
	"github.com/spf13/cobra"

	"github.com/preflightci/preflight/internal/checks/alphaspec"
)

var alphaSpecMode string

var alphaSpecCmd = &cobra.Command{
	Use:   "alpha-spec [files...]",
	Short: "Verify that RAPIDS packages in dependencies.yaml do (or do not) have the alpha spec",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, files []string) {
		args := newArgs()
		if alphaSpecMode != "" {
			args.Mode = alphaSpecMode
		}
		if args.Mode == "" {
			args.Mode = alphaspec.ModeDevelopment
		}
		runChecks(args, files, alphaspec.Check)
	},
}

func init() {
	alphaSpecCmd.Flags().StringVar(&alphaSpecMode, "mode", "",
		"mode to use (development has alpha spec, release does not)")
}
