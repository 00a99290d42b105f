package runner

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/preflightci/preflight/internal/lint"
)

// Args carries the parsed command-line options handed to every check.
type Args struct {
	Fix         bool
	MaxFixWidth int

	// check-specific options
	Mode        string   // alpha-spec: "development" or "release"
	License     string   // project-license: expected license text
	CurrentYear int      // copyright: year headers must reach
	Packages    []string // alpha-spec: package list override
}

// Check inspects a file through its Linter and signals findings only via
// AddWarning/AddReplacement. It must not read or write the file itself.
type Check func(*lint.Linter, *Args)

// Session runs registered checks over target files, renders their warnings,
// and in fix mode writes fixed content back. Files are processed strictly in
// the order given, each with its own independent Linter.
type Session struct {
	args     *Args
	logger   *zap.Logger
	renderer *lint.Renderer
	checks   []Check

	// OnFileDone, when set, is called after each file finishes processing.
	OnFileDone func(path string)
}

func NewSession(args *Args, out io.Writer, logger *zap.Logger) *Session {
	return &Session{
		args:     args,
		logger:   logger,
		renderer: lint.NewRenderer(out, args.MaxFixWidth),
	}
}

// AddCheck registers a check. Checks run in registration order.
func (s *Session) AddCheck(c Check) {
	s.checks = append(s.checks, c)
}

// Run processes files in order and reports whether any file produced at
// least one warning. I/O errors abort the run; binary files are skipped with
// a notice and do not affect the result.
func (s *Session) Run(files []string) (bool, error) {
	hasWarnings := false
	for _, file := range files {
		warned, err := s.runFile(file)
		if err != nil {
			return hasWarnings, err
		}
		if warned {
			hasWarnings = true
		}
		if s.OnFileDone != nil {
			s.OnFileDone(file)
		}
	}
	return hasWarnings, nil
}

func (s *Session) runFile(file string) (bool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", file, err)
	}

	if !utf8.Valid(data) {
		s.logger.Warn("refusing to run text linter on binary file", zap.String("file", file))
		return false, nil
	}

	linter := lint.New(file, string(data))
	for _, check := range s.checks {
		check(linter, s.args)
	}

	// the report always comes out before any fix is attempted
	s.renderer.Render(linter, s.args.Fix)

	if s.args.Fix && hasReplacements(linter) {
		fixed, err := linter.Fix()
		if err != nil {
			// overlap aborts only this file's fix; the report above stands
			s.logger.Error("cannot apply fixes", zap.String("file", file), zap.Error(err))
			return len(linter.Warnings) > 0, nil
		}
		if fixed != linter.Content {
			if err := writeFile(file, fixed); err != nil {
				return true, err
			}
		}
	}

	return len(linter.Warnings) > 0, nil
}

func writeFile(file, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(file); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(file, []byte(content), mode); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}

func hasReplacements(l *lint.Linter) bool {
	for _, w := range l.Warnings {
		if len(w.Replacements) > 0 {
			return true
		}
	}
	return false
}
