// Package runtime provides a context type that holds the open repository
// and logger for use throughout the application. This avoids passing
// multiple parameters.
package runtime

import (
	"markstage.dev/markstage/internal/git"
	"markstage.dev/markstage/internal/output"
)

// Context provides access to the working copy and output for actions
type Context struct {
	Repo  *git.Repository
	Splog *output.Splog
}

// NewContext creates a new context for the given repository
func NewContext(repo *git.Repository) *Context {
	return &Context{
		Repo:  repo,
		Splog: output.NewSplog(),
	}
}
