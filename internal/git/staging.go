package git

import (
	"fmt"
)

// StagePath adds a relative path to the staging index. The index is
// persisted by go-git as part of the Add call; there is no separate
// flush step.
func (r *Repository) StagePath(relPath string) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("could not get the worktree for %s: %w", r.path, err)
	}

	if _, err := worktree.Add(relPath); err != nil {
		return fmt.Errorf("could not add %s to the index: %w", relPath, err)
	}
	return nil
}
