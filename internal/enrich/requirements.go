// Package enrich collects external metadata for a repository's declared
// dependencies via the Brave Search API.
package enrich

import (
	"bufio"
	"io"
	"strings"
)

// ParseRequirements extracts package names from requirements.txt content.
// Comments, blank lines, editable installs, and URL requirements are
// skipped; version specifiers are stripped; names are lowercased and
// deduplicated preserving first-seen order.
func ParseRequirements(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var libraries []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if strings.HasPrefix(line, "-e") ||
			strings.HasPrefix(line, "git+") ||
			strings.HasPrefix(line, "http") {
			continue
		}

		name := strings.ToLower(strings.TrimSpace(splitSpecifier(line)))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		libraries = append(libraries, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return libraries, nil
}

// splitSpecifier returns the package name before any version specifier
// (==, >=, <=, >, <, ~=, !=).
func splitSpecifier(line string) string {
	if i := strings.IndexAny(line, "><=!~"); i >= 0 {
		return line[:i]
	}
	return line
}
