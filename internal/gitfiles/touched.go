package gitfiles

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// statusPatterns match the textual status block git embeds in commit message
// templates during interactive or non-fast-forward operations. The padding
// after each label is fixed by git's output format. Category order here
// fixes the output order of TouchedPaths.
var statusPatterns = []struct {
	status string
	re     *regexp.Regexp
}{
	{"modified", regexp.MustCompile(`modified:   (\S+)`)},
	{"added", regexp.MustCompile(`new file:   (\S+)`)},
	{"removed", regexp.MustCompile(`deleted:    (\S+)`)},
	{"renamed", regexp.MustCompile(`renamed:    (\S+)`)},
}

// TouchedPaths returns the files affected by the commit described by
// message. It scans the message for git status annotations first; when none
// are present the user is likely committing non-interactively (git commit
// -m), so it falls back to the staged file list, queried once. A failed
// query is reported on stderr and degrades to an empty result.
func TouchedPaths(message, workDir string) []string {
	return touchedPaths(message, func() ([]string, error) {
		return StagedPaths(workDir)
	})
}

func touchedPaths(message string, staged func() ([]string, error)) []string {
	var paths []string
	for _, sp := range statusPatterns {
		for _, m := range sp.re.FindAllStringSubmatch(message, -1) {
			paths = append(paths, m[1])
		}
	}
	if len(paths) > 0 {
		return paths
	}

	out, err := staged()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get modified files: %v\n", err)
		return nil
	}
	return out
}

// StagedPaths asks git for the staged file list, one path per line, filtered
// to added/copied/deleted/modified/renamed/type-changed entries. workDir may
// be empty to run in the current directory.
func StagedPaths(workDir string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--cached", "--name-only", "--diff-filter=ACDMRT")
	if workDir != "" {
		cmd.Dir = workDir
	}
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff --cached: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}
