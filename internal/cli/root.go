// Package cli defines the markstage command-line surface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"markstage.dev/markstage/internal/actions"
	"markstage.dev/markstage/internal/copier"
	"markstage.dev/markstage/internal/git"
	"markstage.dev/markstage/internal/output"
	"markstage.dev/markstage/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var repoPath string
	var autoFiles []string
	var inPlace bool
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "markstage --repo <DIR> --auto-files <FILES...>",
		Short: "Stages designated mark files when it is safe to do so",
		Long: `Markstage inspects a Git working copy and stages the configured mark
files into the index, but only when the index is clean and the mark
files are plain working-tree modifications. It never commits or pushes.

By default it operates on an isolated temporary copy of the repository,
so an in-progress manual operation in the original is never disturbed.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := output.NewSplog()
			splog.SetVerbose(verbose)
			return runStage(splog, repoPath, autoFiles, inPlace)
		},
	}

	rootCmd.Flags().StringVarP(&repoPath, "repo", "r", "", "path to the repository to operate on")
	rootCmd.Flags().StringSliceVarP(&autoFiles, "auto-files", "a", nil, "relative paths of files eligible for automatic staging")
	rootCmd.Flags().BoolVar(&inPlace, "in-place", false, "operate on the repository directly instead of a temporary copy")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	_ = rootCmd.MarkFlagRequired("repo")
	_ = rootCmd.MarkFlagDirname("repo")

	return rootCmd
}

// runStage sequences one run: validate, copy, stage. The temporary copy
// is removed on every exit path.
func runStage(splog *output.Splog, repoPath string, autoFiles []string, inPlace bool) error {
	if _, err := git.ValidateRepository(repoPath); err != nil {
		splog.Debug("repository open failed: %v", errors.Unwrap(err))
		return err
	}

	workDir := repoPath
	if !inPlace {
		tree, err := copier.CopyTree(repoPath)
		if err != nil {
			return err
		}
		defer tree.Cleanup()
		splog.Info("Created a temporary directory at %s.", output.StylePath(tree.Path()))
		splog.Info("Copied the repository at %s to the temporary directory.", output.StylePath(repoPath))
		workDir = tree.Path()
	}

	repo, err := git.OpenRepository(workDir)
	if err != nil {
		return err
	}

	ctx := runtime.NewContext(repo)
	ctx.Splog = splog

	_, err = actions.StageAction(ctx, actions.StageOptions{
		AutoFiles: autoFiles,
	})
	return err
}
