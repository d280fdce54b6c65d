package graph

import (
	"path"
	"sort"
	"strings"
)

// sourceExt is the extension of the source files this resolver understands.
const sourceExt = ".py"

// Resolver maps raw import references onto concrete repository files. It is
// built once per edge-building pass from the set of known repo-relative file
// paths and is read-only afterward. The search space is that set, not the
// file system: inventories may come from a prior stored run.
//
// Resolution is a pure, single-attempt function of its inputs. A failed
// resolution is a normal outcome, not an error.
type Resolver struct {
	fileSet map[string]bool
	// sorted is the deterministic iteration order for the fallback scans.
	// Lexicographic order makes ambiguous-basename tie-breaks reproducible
	// across runs; first match wins.
	sorted []string
}

// NewResolver builds a Resolver over the given repo-relative file paths.
// Paths are normalized to forward slashes.
func NewResolver(knownFiles []string) *Resolver {
	r := &Resolver{
		fileSet: make(map[string]bool, len(knownFiles)),
		sorted:  make([]string, 0, len(knownFiles)),
	}
	for _, f := range knownFiles {
		f = strings.ReplaceAll(f, "\\", "/")
		if f == "" || r.fileSet[f] {
			continue
		}
		r.fileSet[f] = true
		r.sorted = append(r.sorted, f)
	}
	sort.Strings(r.sorted)
	return r
}

// Resolve maps an import reference to a repo-relative file path. sourcePath
// is the importing file's repo-relative path. Returns false when no file
// matches; the caller emits no edge in that case.
func (r *Resolver) Resolve(ref, sourcePath string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if strings.HasPrefix(ref, ".") {
		return r.resolveRelative(ref, sourcePath)
	}
	return r.resolveAbsolute(ref)
}

// resolveRelative handles leading-dot references. One dot stays in the
// importing file's directory; each additional dot ascends one level. The
// trailing non-empty segment is the target module name; a reference that is
// only dots names a package, not a file, and fails.
func (r *Resolver) resolveRelative(ref, sourcePath string) (string, bool) {
	parts := strings.Split(ref, ".")

	dots := 0
	for _, p := range parts {
		if p != "" {
			break
		}
		dots++
	}

	module := parts[len(parts)-1]
	if module == "" && len(parts) > 1 {
		module = parts[len(parts)-2]
	}
	if module == "" {
		return "", false
	}

	var dirParts []string
	if dir := path.Dir(sourcePath); dir != "." && dir != "" {
		dirParts = strings.Split(dir, "/")
	}

	// Ascending past the repository root fails rather than wrapping.
	if dots > len(dirParts) {
		return "", false
	}

	target := dirParts
	if dots > 1 {
		target = dirParts[:len(dirParts)-(dots-1)]
	}
	base := strings.Join(target, "/")

	for _, candidate := range []string{
		joinPath(base, module+sourceExt),
		joinPath(base, module, "__init__"+sourceExt),
	} {
		if r.fileSet[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// resolveAbsolute handles dotted references with no leading dot. Candidates
// are tried in order of decreasing precision; the deliberately coarse
// basename scans match a file named after the segment anywhere in the tree.
func (r *Resolver) resolveAbsolute(ref string) (string, bool) {
	dotted := strings.ReplaceAll(ref, ".", "/")

	// 1. Exact dotted-path match: "src.auth" -> src/auth.py or
	// src/auth/__init__.py.
	for _, candidate := range []string{dotted + sourceExt, dotted + "/__init__" + sourceExt} {
		if r.fileSet[candidate] {
			return candidate, true
		}
	}

	parts := strings.Split(ref, ".")

	// 2. First-segment basename match anywhere in the tree.
	if f, ok := r.scanBasename(parts[0]); ok {
		return f, true
	}

	// 3. Last-segment basename match: "src.auth" matching a file named
	// auth.py even when it is not nested under src.
	if len(parts) > 1 {
		if f, ok := r.scanBasename(parts[len(parts)-1]); ok {
			return f, true
		}
	}

	// 4. Suffix/substring fallback over extension-stripped paths.
	if len(parts) > 1 {
		for _, f := range r.sorted {
			stem := strings.TrimSuffix(f, path.Ext(f))
			if strings.HasSuffix(stem, dotted) || strings.Contains(stem, dotted) {
				return f, true
			}
		}
	}

	return "", false
}

// scanBasename returns the first known file whose extension-stripped name
// equals seg, in the resolver's deterministic iteration order.
func (r *Resolver) scanBasename(seg string) (string, bool) {
	if seg == "" {
		return "", false
	}
	for _, f := range r.sorted {
		name := path.Base(f)
		if strings.TrimSuffix(name, path.Ext(name)) == seg {
			return f, true
		}
	}
	return "", false
}

// joinPath joins non-empty segments with forward slashes without cleaning
// away the repo-relative form.
func joinPath(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "/")
}
