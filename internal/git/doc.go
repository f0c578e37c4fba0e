// Package git provides the repository operations markstage needs.
//
// It wraps go-git and provides a Go-friendly interface for:
//   - Opening and validating working copies
//   - Point-in-time status snapshots
//   - Staging paths into the index
//
// This package should be the only place where go-git is used directly.
package git
