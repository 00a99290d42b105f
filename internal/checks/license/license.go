// Package license checks the declared project license in pyproject.toml.
package license

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/preflightci/preflight/internal/lint"
	"github.com/preflightci/preflight/internal/runner"
)

// DefaultLicense is what pyproject.toml is expected to declare unless the
// configuration overrides it.
const DefaultLicense = "Apache 2.0"

var licenseTextRE = regexp.MustCompile(`text\s*=\s*("(?:[^"\\]|\\.)*")`)

type pyproject struct {
	Project struct {
		License struct {
			Text string `toml:"text"`
		} `toml:"license"`
	} `toml:"project"`
}

// Check warns when project.license.text differs from the expected license
// and replaces the quoted value.
func Check(l *lint.Linter, args *runner.Args) {
	var doc pyproject
	md, err := toml.Decode(l.Content, &doc)
	if err != nil {
		l.AddWarning(lint.Span{}, fmt.Sprintf("cannot parse TOML: %v", err))
		return
	}
	if !md.IsDefined("project", "license", "text") {
		return
	}

	want := args.License
	if want == "" {
		want = DefaultLicense
	}
	got := doc.Project.License.Text
	if got == want {
		return
	}

	span, ok := findLicenseValue(l.Content, got)
	if !ok {
		return
	}
	l.AddWarning(span, fmt.Sprintf("license should be %q", want)).
		AddReplacement(span, strconv.Quote(want))
}

// findLicenseValue locates the quoted TOML string whose decoded value equals
// the license text the parser saw, tying the reported span to the parsed
// document rather than to a guess.
func findLicenseValue(content, value string) (lint.Span, bool) {
	for _, m := range licenseTextRE.FindAllStringSubmatchIndex(content, -1) {
		quoted := content[m[2]:m[3]]
		if s, err := strconv.Unquote(quoted); err == nil && s == value {
			return lint.Span{Start: m[2], End: m[3]}, true
		}
	}
	return lint.Span{}, false
}
