// Package copyright checks that copyright headers are present and carry the
// current year.
package copyright

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/preflightci/preflight/internal/lint"
	"github.com/preflightci/preflight/internal/runner"
)

var copyrightRE = regexp.MustCompile(
	`Copyright *(?:\(c\))? *((\d{4})(-(\d{4}))?),? *NVIDIA C(?:ORPORATION|orporation)`)

const replacementFormat = "Copyright (c) %s-%d, NVIDIA CORPORATION"

// Check warns when no copyright notice exists, and proposes an updated year
// range for notices whose last year is stale.
func Check(l *lint.Linter, args *runner.Args) {
	year := args.CurrentYear
	if year == 0 {
		year = time.Now().Year()
	}

	matches := copyrightRE.FindAllStringSubmatchIndex(l.Content, -1)
	if len(matches) == 0 {
		l.AddWarning(lint.Span{}, "no copyright notice found")
		return
	}

	for _, m := range matches {
		firstYear := l.Content[m[4]:m[5]]
		last := firstYear
		if m[8] >= 0 {
			last = l.Content[m[8]:m[9]]
		}
		lastYear, err := strconv.Atoi(last)
		if err != nil || lastYear >= year {
			continue
		}

		l.AddWarning(lint.Span{Start: m[2], End: m[3]}, "copyright is out of date").
			AddReplacement(lint.Span{Start: m[0], End: m[1]},
				fmt.Sprintf(replacementFormat, firstYear, year))
	}
}
