package alphaspec

import (
	"sort"
	"strings"
)

// Requirement is a minimal parsed form of a dependency requirement string: a
// package name, an optional bracketed extras segment, an optional
// comma-separated specifier list, and an optional environment marker, e.g.
// "cudf[all]>=24.04,<24.06; python_version<'3.12'".
type Requirement struct {
	Name       string
	Extras     string // verbatim "[...]" segment, brackets included
	Specifiers []string
	Marker     string
}

func parseRequirement(s string) (Requirement, bool) {
	s = strings.TrimSpace(s)

	var req Requirement
	if i := strings.IndexByte(s, ';'); i >= 0 {
		req.Marker = strings.TrimSpace(s[i+1:])
		s = strings.TrimSpace(s[:i])
	}

	i := 0
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	if i == 0 {
		return Requirement{}, false
	}
	req.Name = s[:i]
	s = s[i:]

	if strings.HasPrefix(s, "[") {
		j := strings.IndexByte(s, ']')
		if j < 0 {
			return Requirement{}, false
		}
		req.Extras = strings.ReplaceAll(s[:j+1], " ", "")
		s = s[j+1:]
	}

	for _, spec := range strings.Split(s, ",") {
		spec = strings.TrimSpace(spec)
		if spec != "" {
			req.Specifiers = append(req.Specifiers, spec)
		}
	}
	return req, true
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '.' || c == '_' || c == '-'
}

// HasSpecifier reports whether the requirement carries spec, ignoring
// internal whitespace.
func (r Requirement) HasSpecifier(spec string) bool {
	for _, s := range r.Specifiers {
		if strings.ReplaceAll(s, " ", "") == spec {
			return true
		}
	}
	return false
}

// WithoutSpecifier returns a copy of the requirement with spec removed.
func (r Requirement) WithoutSpecifier(spec string) Requirement {
	out := Requirement{Name: r.Name, Extras: r.Extras, Marker: r.Marker}
	for _, s := range r.Specifiers {
		if strings.ReplaceAll(s, " ", "") != spec {
			out.Specifiers = append(out.Specifiers, s)
		}
	}
	return out
}

// String renders the requirement with its specifiers in canonical sorted
// order, keeping extras attached to the name and the marker at the end.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString(r.Extras)

	if len(r.Specifiers) > 0 {
		specs := make([]string, len(r.Specifiers))
		for i, s := range r.Specifiers {
			specs[i] = strings.ReplaceAll(s, " ", "")
		}
		sort.Strings(specs)
		b.WriteString(strings.Join(specs, ","))
	}

	if r.Marker != "" {
		b.WriteString("; ")
		b.WriteString(r.Marker)
	}
	return b.String()
}
