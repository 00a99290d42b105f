package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Scanner expands command-line paths into lintable files. Plain files are
// kept as given; directories are walked and files matched by extension or
// exact base name are collected in walk order, which keeps the output
// deterministic.
type Scanner struct {
	exts  map[string]bool
	names map[string]bool
}

func New(exts, names []string) *Scanner {
	s := &Scanner{
		exts:  make(map[string]bool, len(exts)),
		names: make(map[string]bool, len(names)),
	}
	for _, e := range exts {
		s.exts[e] = true
	}
	for _, n := range names {
		s.names[n] = true
	}
	return s
}

// Match reports whether path is a candidate for linting.
func (s *Scanner) Match(path string) bool {
	if s.names[filepath.Base(path)] {
		return true
	}
	return s.exts[filepath.Ext(path)]
}

// Scan resolves the given paths to a flat, ordered file list.
func (s *Scanner) Scan(paths ...string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && s.Match(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
