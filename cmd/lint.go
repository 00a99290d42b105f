package cmd

import (
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/preflightci/preflight/internal/checks/alphaspec"
	"github.com/preflightci/preflight/internal/checks/copyright"
	"github.com/preflightci/preflight/internal/checks/license"
	"github.com/preflightci/preflight/internal/checks/shell"
	"github.com/preflightci/preflight/internal/lint"
	"github.com/preflightci/preflight/internal/runner"
	"github.com/preflightci/preflight/internal/scanner"
)

var shellExtensions = []string{".sh", ".bash"}

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Run every bundled check against the given files or directories",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, paths []string) {
		args := newArgs()
		if args.Mode == "" {
			args.Mode = alphaspec.ModeDevelopment
		}

		files, err := lintScanner().Scan(paths...)
		if err != nil {
			logger.Fatal("cannot resolve paths", zap.Error(err))
		}
		if len(files) == 0 {
			return
		}

		session := runner.NewSession(args, os.Stdout, logger)
		registerAllChecks(session)

		// progress goes to stderr so the report's ordering on stdout stays
		// intact
		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("linting"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
		)
		session.OnFileDone = func(string) { _ = bar.Add(1) }

		hasWarnings, err := session.Run(files)
		_ = bar.Clear()
		if err != nil {
			logger.Fatal("lint run failed", zap.Error(err))
		}
		if hasWarnings {
			os.Exit(1)
		}
	},
}

func lintScanner() *scanner.Scanner {
	return scanner.New(shellExtensions, []string{"dependencies.yaml", "pyproject.toml"})
}

// registerAllChecks gates each bundled check by the file it applies to.
func registerAllChecks(s *runner.Session) {
	s.AddCheck(forName("dependencies.yaml", alphaspec.Check))
	s.AddCheck(forExts(shellExtensions, shell.CheckCondaYes))
	s.AddCheck(forName("pyproject.toml", license.Check))
	s.AddCheck(copyright.Check)
}

func forName(name string, c runner.Check) runner.Check {
	return func(l *lint.Linter, args *runner.Args) {
		if filepath.Base(l.Filename) == name {
			c(l, args)
		}
	}
}

func forExts(exts []string, c runner.Check) runner.Check {
	return func(l *lint.Linter, args *runner.Args) {
		for _, e := range exts {
			if filepath.Ext(l.Filename) == e {
				c(l, args)
				return
			}
		}
	}
}
