package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/preflightci/preflight/internal/runner"
)

var (
	fix         bool
	cfgFile     string
	maxFixWidth int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "preflight",
	Short:        "preflight - lint and fix repository configuration files",
	SilenceUsage: true,
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	logger = zap.Must(zap.NewDevelopment())

	rootCmd.PersistentFlags().BoolVar(&fix, "fix", false, "automatically fix warnings")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the configuration file")
	rootCmd.PersistentFlags().IntVar(&maxFixWidth, "max-fix-width", 0, "widest suggested fix shown inline")

	rootCmd.AddCommand(alphaSpecCmd)
	rootCmd.AddCommand(condaYesCmd)
	rootCmd.AddCommand(licenseCmd)
	rootCmd.AddCommand(copyrightCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(watchCmd)
}

// newArgs builds the shared check arguments from the global flags and the
// optional configuration file.
func newArgs() *runner.Args {
	args := &runner.Args{
		Fix:         fix,
		MaxFixWidth: maxFixWidth,
	}
	if cfgFile != "" {
		config, err := runner.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("failed to load config", zap.String("path", cfgFile), zap.Error(err))
		}
		config.Apply(args)
	}
	return args
}

// runChecks wires a session over the files and exits 1 when any file
// produced a warning.
func runChecks(args *runner.Args, files []string, checks ...runner.Check) {
	session := runner.NewSession(args, os.Stdout, logger)
	for _, c := range checks {
		session.AddCheck(c)
	}

	hasWarnings, err := session.Run(files)
	if err != nil {
		logger.Fatal("lint run failed", zap.Error(err))
	}
	if hasWarnings {
		os.Exit(1)
	}
}
