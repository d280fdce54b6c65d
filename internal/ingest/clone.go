// Package ingest acquires repositories and enumerates their source files.
package ingest

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Clone clones repoURL into targetDir using the git CLI and returns the
// checkout path. An existing checkout for the same repository is removed
// first so every run starts from a fresh clone.
func Clone(ctx context.Context, repoURL, targetDir string) (string, error) {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create target dir: %w", err)
	}

	repoPath := filepath.Join(targetDir, repoDirName(repoURL))
	if _, err := os.Stat(repoPath); err == nil {
		if err := os.RemoveAll(repoPath); err != nil {
			return "", fmt.Errorf("remove stale checkout: %w", err)
		}
	}

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", repoURL, repoPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git clone %s: %w: %s", repoURL, err, strings.TrimSpace(string(out)))
	}
	return repoPath, nil
}

// repoDirName derives a checkout directory name from a repository URL:
// the last path segment with any ".git" suffix stripped.
func repoDirName(repoURL string) string {
	name := strings.TrimSuffix(repoURL, "/")
	if i := strings.LastIndexAny(name, "/:"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		name = "repo"
	}
	return name
}
