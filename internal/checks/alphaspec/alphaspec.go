// Package alphaspec verifies that RAPIDS packages declared in
// dependencies.yaml do (or do not) carry the alpha version specifier,
// depending on whether the tree is being prepared for development or
// release.
package alphaspec

import (
	"fmt"
	"strings"

	"github.com/preflightci/preflight/internal/lint"
	"github.com/preflightci/preflight/internal/runner"
	"github.com/preflightci/preflight/internal/yamltree"
)

const (
	ModeDevelopment = "development"
	ModeRelease     = "release"

	// AlphaSpecifier marks a package as installable from nightly alpha
	// builds.
	AlphaSpecifier = ">=0.0.0a0"
)

// defaultPackages lists the RAPIDS packages that publish alpha versions.
var defaultPackages = []string{
	"cubinlinker",
	"cucim",
	"cudf",
	"cugraph",
	"cugraph-dgl",
	"cugraph-equivariant",
	"cugraph-pyg",
	"cuml",
	"cuproj",
	"cuspatial",
	"cuxfilter",
	"dask-cudf",
	"distributed-ucxx",
	"librmm",
	"libucx",
	"nx-cugraph",
	"ptxcompiler",
	"pylibcugraph",
	"pylibcugraphops",
	"pylibraft",
	"pylibwholegraph",
	"pynvjitlink",
	"raft-dask",
	"rmm",
	"ucx-py",
	"ucxx",
}

// Check is the dependencies.yaml alpha-spec check.
func Check(l *lint.Linter, args *runner.Args) {
	root, err := yamltree.Compose(l)
	if err != nil {
		l.AddWarning(lint.Span{}, err.Error())
		return
	}
	if root == nil {
		return
	}
	checkRoot(l, args, root)
}

func checkRoot(l *lint.Linter, args *runner.Args, node *yamltree.Node) {
	if node.Kind() != yamltree.Mapping {
		return
	}
	for _, p := range node.Pairs() {
		if p.Key.Kind() == yamltree.Scalar && p.Key.Value() == "dependencies" {
			checkDependencies(l, args, p.Value)
		}
	}
}

func checkDependencies(l *lint.Linter, args *runner.Args, node *yamltree.Node) {
	if node.Kind() != yamltree.Mapping {
		return
	}
	for _, dep := range node.Pairs() {
		if dep.Value.Kind() != yamltree.Mapping {
			continue
		}
		for _, p := range dep.Value.Pairs() {
			if p.Key.Kind() != yamltree.Scalar {
				continue
			}
			switch p.Key.Value() {
			case "common":
				checkCommon(l, args, p.Value)
			case "specific":
				checkSpecific(l, args, p.Value)
			}
		}
	}
}

func checkCommon(l *lint.Linter, args *runner.Args, node *yamltree.Node) {
	if node.Kind() != yamltree.Sequence {
		return
	}
	for _, set := range node.Items() {
		if set.Kind() != yamltree.Mapping {
			continue
		}
		for _, p := range set.Pairs() {
			if p.Key.Kind() == yamltree.Scalar && p.Key.Value() == "packages" {
				checkPackages(l, args, p.Value)
			}
		}
	}
}

func checkSpecific(l *lint.Linter, args *runner.Args, node *yamltree.Node) {
	if node.Kind() != yamltree.Sequence {
		return
	}
	for _, matcher := range node.Items() {
		if matcher.Kind() != yamltree.Mapping {
			continue
		}
		for _, p := range matcher.Pairs() {
			if p.Key.Kind() == yamltree.Scalar && p.Key.Value() == "matrices" {
				checkMatrices(l, args, p.Value)
			}
		}
	}
}

func checkMatrices(l *lint.Linter, args *runner.Args, node *yamltree.Node) {
	if node.Kind() != yamltree.Sequence {
		return
	}
	for _, item := range node.Items() {
		if item.Kind() != yamltree.Mapping {
			continue
		}
		for _, p := range item.Pairs() {
			if p.Key.Kind() == yamltree.Scalar && p.Key.Value() == "packages" {
				checkPackages(l, args, p.Value)
			}
		}
	}
}

func checkPackages(l *lint.Linter, args *runner.Args, node *yamltree.Node) {
	if node.Kind() != yamltree.Sequence {
		return
	}
	for _, spec := range node.Items() {
		checkPackageSpec(l, args, spec)
	}
}

func checkPackageSpec(l *lint.Linter, args *runner.Args, node *yamltree.Node) {
	if node.Kind() != yamltree.Scalar {
		return
	}
	req, ok := parseRequirement(node.Value())
	if !ok {
		return
	}

	packages := packageSet(args)
	if !packages[req.Name] && !isCUDASuffixed(req.Name, packages) {
		return
	}

	span := node.Span()
	hasAlpha := req.HasSpecifier(AlphaSpecifier)

	switch {
	case args.Mode == ModeDevelopment && !hasAlpha:
		req.Specifiers = append(req.Specifiers, AlphaSpecifier)
		l.AddWarning(span, fmt.Sprintf("add alpha spec for RAPIDS package %s", req.Name)).
			AddReplacement(span, req.String())

	case args.Mode == ModeRelease && hasAlpha:
		l.AddWarning(span, fmt.Sprintf("remove alpha spec for RAPIDS package %s", req.Name)).
			AddReplacement(span, req.WithoutSpecifier(AlphaSpecifier).String())
	}
}

func packageSet(args *runner.Args) map[string]bool {
	names := defaultPackages
	if len(args.Packages) > 0 {
		names = args.Packages
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// isCUDASuffixed reports whether name is a known package with a "-cuXX"
// wheel suffix, e.g. "cudf-cu12".
func isCUDASuffixed(name string, packages map[string]bool) bool {
	for pkg := range packages {
		if strings.HasPrefix(name, pkg+"-cu") {
			return true
		}
	}
	return false
}
