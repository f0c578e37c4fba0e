package git

import (
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"

	"markstage.dev/markstage/internal/errors"
)

// StatusEntry is a single path in a status snapshot, with its index
// (staging) and working-tree state.
type StatusEntry struct {
	Path     string
	Staging  gogit.StatusCode
	Worktree gogit.StatusCode
}

// IsWorktreeModified reports whether the entry is exactly a working-tree
// modification: nothing recorded in the index, file modified on disk.
func (e StatusEntry) IsWorktreeModified() bool {
	return e.Staging == gogit.Unmodified && e.Worktree == gogit.Modified
}

// StatusString renders the entry's status pair for error messages and logs.
func (e StatusEntry) StatusString() string {
	return fmt.Sprintf("index[%s] worktree[%s]", statusCodeName(e.Staging), statusCodeName(e.Worktree))
}

// StatusSet is a point-in-time snapshot of a working copy's status,
// ordered by path. Recomputing requires a fresh Snapshot call.
type StatusSet []StatusEntry

// Snapshot queries the working copy's status and returns it as an
// ordered set. go-git reports status as a map, so entries are sorted
// by path for a deterministic order. An entry without a usable path
// is a hard error, never silently dropped.
func (r *Repository) Snapshot() (StatusSet, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("could not get the worktree for %s: %w", r.path, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("could not fetch file statuses for %s: %w", r.path, err)
	}

	set := make(StatusSet, 0, len(status))
	for path, fileStatus := range status {
		if path == "" {
			return nil, errors.ErrUnrepresentablePath
		}
		set = append(set, StatusEntry{
			Path:     path,
			Staging:  fileStatus.Staging,
			Worktree: fileStatus.Worktree,
		})
	}

	sort.Slice(set, func(i, j int) bool {
		return set[i].Path < set[j].Path
	})

	return set, nil
}

// HasStagedChanges reports whether any entry has a change already
// recorded in the staging index, regardless of its working-tree state.
// An empty set is vacuously clean.
func (s StatusSet) HasStagedChanges() bool {
	for _, entry := range s {
		if isStagedCode(entry.Staging) {
			return true
		}
	}
	return false
}

// FilterByPaths returns, in the set's original order, the entries whose
// path exactly matches a member of paths. No prefix or glob matching.
func (s StatusSet) FilterByPaths(paths []string) StatusSet {
	allowed := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		allowed[p] = struct{}{}
	}

	var filtered StatusSet
	for _, entry := range s {
		if _, ok := allowed[entry.Path]; ok {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// isStagedCode reports whether a staging-column code represents a
// change recorded in the index. Untracked and Unmodified do not count.
func isStagedCode(code gogit.StatusCode) bool {
	switch code {
	case gogit.Added, gogit.Deleted, gogit.Modified, gogit.Renamed, gogit.Copied, gogit.UpdatedButUnmerged:
		return true
	default:
		return false
	}
}

func statusCodeName(code gogit.StatusCode) string {
	switch code {
	case gogit.Unmodified:
		return "unmodified"
	case gogit.Untracked:
		return "untracked"
	case gogit.Modified:
		return "modified"
	case gogit.Added:
		return "added"
	case gogit.Deleted:
		return "deleted"
	case gogit.Renamed:
		return "renamed"
	case gogit.Copied:
		return "copied"
	case gogit.UpdatedButUnmerged:
		return "unmerged"
	default:
		return fmt.Sprintf("unknown(%c)", byte(code))
	}
}
