package cmd

import (
	"github.com/spf13/cobra"

	"github.com/preflightci/preflight/internal/checks/license"
)

var expectedLicense string

var licenseCmd = &cobra.Command{
	Use:   "project-license [files...]",
	Short: "Verify that pyproject.toml declares the expected license",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, files []string) {
		args := newArgs()
		if expectedLicense != "" {
			args.License = expectedLicense
		}
		runChecks(args, files, license.Check)
	},
}

func init() {
	licenseCmd.Flags().StringVar(&expectedLicense, "license", "",
		"expected license text (default \""+license.DefaultLicense+"\")")
}
