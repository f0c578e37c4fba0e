// Package actions contains the orchestration logic behind CLI commands.
package actions

import (
	"fmt"

	markstageerrors "markstage.dev/markstage/internal/errors"
	"markstage.dev/markstage/internal/output"
	"markstage.dev/markstage/internal/runtime"
)

// StageOutcome is the terminal state of a staging run.
type StageOutcome int

const (
	// OutcomeStaged means every mark file found among the changes was staged
	OutcomeStaged StageOutcome = iota

	// OutcomeDirtyIndex means staged changes were already present, so the
	// run aborted without touching the index. A manual change is assumed
	// to be in progress; this is a safety stop, not an error.
	OutcomeDirtyIndex

	// OutcomeNoMarkFiles means none of the configured mark files appear
	// among the working copy's changes; nothing to do.
	OutcomeNoMarkFiles
)

// StageOptions configures a staging run
type StageOptions struct {
	// AutoFiles is the allow-list of relative paths eligible for
	// automatic staging. Exact matches only.
	AutoFiles []string
}

// StageResult reports what a staging run did
type StageResult struct {
	Outcome StageOutcome
	Staged  []string
}

// StageAction stages the configured mark files if, and only if, it is
// safe to do so: the index must be clean and every mark file found
// among the changes must be a plain working-tree modification.
//
// Every filtered entry is validated before any index mutation, so a
// policy violation aborts with nothing staged.
func StageAction(ctx *runtime.Context, opts StageOptions) (*StageResult, error) {
	statuses, err := ctx.Repo.Snapshot()
	if err != nil {
		return nil, err
	}

	if statuses.HasStagedChanges() {
		ctx.Splog.Info("The repository's index is not empty. There's possibly a manual change ongoing, so the mark files were left alone.")
		return &StageResult{Outcome: OutcomeDirtyIndex}, nil
	}

	markFiles := statuses.FilterByPaths(opts.AutoFiles)
	if len(markFiles) == 0 {
		ctx.Splog.Info("No mark files to stage.")
		return &StageResult{Outcome: OutcomeNoMarkFiles}, nil
	}

	for _, entry := range markFiles {
		if !entry.IsWorktreeModified() {
			return nil, markstageerrors.NewUnexpectedStatusError(entry.Path, entry.StatusString())
		}
	}

	result := &StageResult{Outcome: OutcomeStaged}
	for _, entry := range markFiles {
		if err := ctx.Repo.StagePath(entry.Path); err != nil {
			return nil, err
		}
		ctx.Splog.Info("Staged %s (%s)", output.StylePath(entry.Path), entry.StatusString())
		result.Staged = append(result.Staged, entry.Path)
	}

	ctx.Splog.Info("%s", output.StyleSuccess(fmt.Sprintf("Staged %d mark file(s). Nothing was committed or pushed.", len(result.Staged))))
	return result, nil
}
