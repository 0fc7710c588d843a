package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BranchName returns the branch name for a task.
// Format: <abbv>-<id>/<slug>, where the slug is the task title lowercased
// with spaces replaced by hyphens.
//
// The encoding is lossy: case and exact spacing of the title are gone, so
// only the task id survives a round trip. Anything that needs the real title
// must look the task up by id, never reconstruct it from a branch name.
func BranchName(abbv string, id int, title string) string {
	slug := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	return fmt.Sprintf("%s-%d/%s", abbv, id, slug)
}

// branchPattern matches task branches: <abbv>-<id>/<slug>
var branchPattern = regexp.MustCompile(`^[^/]+-(\d+)/.+$`)

// ParseBranchTaskID extracts the task id from a branch name.
// Returns ErrBranchFormat if the branch does not follow the task naming
// convention (missing separator, non-numeric id segment).
func ParseBranchTaskID(branch string) (int, error) {
	matches := branchPattern.FindStringSubmatch(branch)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrBranchFormat, branch)
	}
	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBranchFormat, branch)
	}
	return id, nil
}
