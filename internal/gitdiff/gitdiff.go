// Package gitdiff lists locally changed files by shelling out to git, the
// input for incremental site updates.
package gitdiff

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ChangedFile is one path reported by git diff.
type ChangedFile struct {
	Path    string
	Deleted bool
}

// ChangedFiles runs git diff --name-status against baseRef and parses the
// result.
func ChangedFiles(baseRef string) ([]ChangedFile, error) {
	cmd := exec.Command("git", "diff", "--name-status", baseRef)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff failed: %w", err)
	}
	return parseNameStatus(output), nil
}

func parseNameStatus(output []byte) []ChangedFile {
	var changes []ChangedFile
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		status := fields[0]
		// Renames report "R<score> old new". The old path's page must be
		// torn down like a deletion; the new path renders fresh.
		if strings.HasPrefix(status, "R") && len(fields) >= 3 {
			changes = append(changes,
				ChangedFile{Path: fields[1], Deleted: true},
				ChangedFile{Path: fields[len(fields)-1]})
			continue
		}
		changes = append(changes, ChangedFile{
			Path:    fields[len(fields)-1],
			Deleted: strings.HasPrefix(status, "D"),
		})
	}
	return changes
}
