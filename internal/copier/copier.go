// Package copier produces isolated temporary copies of directory trees.
package copier

import (
	"fmt"
	"os"

	cp "github.com/otiai10/copy"
)

// TempTree is a temporary directory holding a copy of a source tree.
// Callers must defer Cleanup so the directory is removed on every exit
// path.
type TempTree struct {
	path string
}

// Path returns the temporary directory's path
func (t *TempTree) Path() string {
	return t.path
}

// Cleanup removes the temporary directory and everything under it.
// Safe to call more than once.
func (t *TempTree) Cleanup() error {
	if t.path == "" {
		return nil
	}
	err := os.RemoveAll(t.path)
	t.path = ""
	return err
}

// CopyTree creates a process-unique temporary directory and copies the
// contents of sourceDir into it, so the temp directory becomes a root
// with the same top-level entries as the source.
func CopyTree(sourceDir string) (*TempTree, error) {
	tmpDir, err := os.MkdirTemp("", "markstage-*")
	if err != nil {
		return nil, fmt.Errorf("could not create a temporary directory: %w", err)
	}

	if err := cp.Copy(sourceDir, tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("could not copy %s to %s: %w", sourceDir, tmpDir, err)
	}

	return &TempTree{path: tmpDir}, nil
}
