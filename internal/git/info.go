// Package git shells out to the git binary for repository info and the
// optional auto-commit of generated answer files.
package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Info describes the state of a git repository.
type Info struct {
	Branch string
	Hash   string // short (7-char) HEAD hash
	Dirty  bool
	Ahead  int
	Behind int
}

// GetInfo returns repository info for dir, or nil (with no error) when dir
// is not inside a git repository.
func GetInfo(dir string) (*Info, error) {
	if _, err := runGit(dir, "rev-parse", "--git-dir"); err != nil {
		// Not a repository; this is normal, not an error.
		return nil, nil
	}

	branch, err := runGit(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("resolving branch: %w", err)
	}

	hash, err := runGit(dir, "rev-parse", "--short=7", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	status, err := runGit(dir, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}

	info := &Info{
		Branch: branch,
		Hash:   hash,
		Dirty:  status != "",
	}

	// Ahead/behind stay zero when no upstream is configured.
	if counts, err := runGit(dir, "rev-list", "--left-right", "--count", "@{upstream}...HEAD"); err == nil {
		fields := strings.Fields(counts)
		if len(fields) == 2 {
			info.Behind, _ = strconv.Atoi(fields[0])
			info.Ahead, _ = strconv.Atoi(fields[1])
		}
	}

	return info, nil
}

// CommitFile stages path and commits it with the given message. The path
// is relative to dir.
func CommitFile(dir, path, message string) error {
	if _, err := runGit(dir, "add", "--", path); err != nil {
		return fmt.Errorf("staging %s: %w", path, err)
	}
	if _, err := runGit(dir, "commit", "-m", message, "--", path); err != nil {
		return fmt.Errorf("committing %s: %w", path, err)
	}
	return nil
}

// runGit runs a git command in dir and returns its trimmed stdout.
func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}
