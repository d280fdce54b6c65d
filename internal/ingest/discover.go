package ingest

import (
	"os"
	"path/filepath"
	"sort"

	ignore "github.com/sabhiram/go-gitignore"
)

// skipDirs are directories that never contain project source worth parsing:
// version control, virtual environments, and dependency-manager caches.
var skipDirs = map[string]struct{}{
	".git":         {},
	"__pycache__":  {},
	".venv":        {},
	"venv":         {},
	"env":          {},
	"node_modules": {},
	".tox":         {},
	".mypy_cache":  {},
	".ruff_cache":  {},
	".pytest_cache": {},
	"build":        {},
	"dist":         {},
}

// Discover walks root and returns repo-relative, forward-slash paths of all
// Python source files, sorted lexicographically. Vendored and VCS
// directories are skipped, extraDirs adds per-project exclusions, and a
// .gitignore at the repository root is honored when present.
func Discover(root string, extraDirs []string) ([]string, error) {
	extra := make(map[string]struct{}, len(extraDirs))
	for _, d := range extraDirs {
		extra[d] = struct{}{}
	}

	gi := loadGitignore(root)

	var results []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip {
				return filepath.SkipDir
			}
			if _, skip := extra[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		if filepath.Ext(name) != ".py" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		results = append(results, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)
	return results, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
