package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"markstage.dev/markstage/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	repo *gogit.Repository
	path string
}

// OpenRepository opens a git repository at the given path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, errors.NewNotRepositoryError(absPath, err)
	}

	return &Repository{
		repo: repo,
		path: absPath,
	}, nil
}

// Root returns the root directory of the repository
func (r *Repository) Root() string {
	return r.path
}

// ValidateRepository reports whether path opens as a git working copy.
// The open error is returned alongside the boolean so callers can log
// the cause without changing the yes/no contract.
func ValidateRepository(path string) (bool, error) {
	_, err := OpenRepository(path)
	if err != nil {
		return false, err
	}
	return true, nil
}
