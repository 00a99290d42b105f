// Package shell hosts checks that operate on parsed shell scripts.
package shell

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/preflightci/preflight/internal/lint"
	"github.com/preflightci/preflight/internal/runner"
)

// interactiveCondaCommands maps conda subcommands that prompt for
// confirmation to the arguments that suppress the prompt.
var interactiveCondaCommands = map[string][]string{
	"clean":     {"-y", "--yes"},
	"create":    {"-y", "--yes"},
	"install":   {"-y", "--yes"},
	"remove":    {"-y", "--yes"},
	"uninstall": {"-y", "--yes"},
	"update":    {"-y", "--yes"},
	"upgrade":   {"-y", "--yes"},
}

// globalCondaFlags may precede the subcommand without naming it.
var globalCondaFlags = map[string]bool{
	"conda":        true,
	"-h":           true,
	"--help":       true,
	"--no-plugins": true,
	"-V":           true,
}

// CheckCondaYes flags interactive conda invocations in CI scripts that
// would block waiting for confirmation, and inserts the -y argument.
func CheckCondaYes(l *lint.Linter, args *runner.Args) {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(l.Content), l.Filename)
	if err != nil {
		l.AddWarning(lint.Span{}, fmt.Sprintf("cannot parse shell script: %v", err))
		return
	}

	syntax.Walk(file, func(node syntax.Node) bool {
		if call, ok := node.(*syntax.CallExpr); ok {
			checkCall(l, call)
		}
		return true
	})
}

func checkCall(l *lint.Linter, call *syntax.CallExpr) {
	words := make([]string, len(call.Args))
	for i, w := range call.Args {
		words[i] = w.Lit()
	}
	if len(words) == 0 || words[0] != "conda" {
		return
	}

	cmdIndex := -1
	for i, word := range words {
		if !globalCondaFlags[word] {
			cmdIndex = i
			break
		}
	}
	if cmdIndex < 0 {
		return
	}
	// only flags before the subcommand make the whole invocation
	// non-interactive
	for _, arg := range words[1:cmdIndex] {
		if arg == "-h" || arg == "--help" || arg == "-V" {
			return
		}
	}

	yesArgs, ok := interactiveCondaCommands[words[cmdIndex]]
	if !ok {
		return
	}
	for _, arg := range words[cmdIndex:] {
		for _, yes := range yesArgs {
			if arg == yes {
				return
			}
		}
	}

	span := lint.Span{
		Start: int(call.Args[0].Pos().Offset()),
		End:   int(call.Args[cmdIndex].End().Offset()),
	}
	insert := lint.Span{Start: span.End, End: span.End}
	l.AddWarning(span, fmt.Sprintf("add %s argument", yesArgs[0])).
		AddReplacement(insert, " "+yesArgs[0])
}
