package actions_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"markstage.dev/markstage/internal/actions"
	markstageerrors "markstage.dev/markstage/internal/errors"
	"markstage.dev/markstage/internal/git"
	"markstage.dev/markstage/internal/output"
	"markstage.dev/markstage/internal/runtime"
	"markstage.dev/markstage/testhelpers"
)

func TestStageAction(t *testing.T) {
	t.Run("stages a modified mark file with a clean index", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("mark1", "initial", "init")
		})
		require.NoError(t, scene.Repo.WriteFile("mark1", "changed"))

		result, err := stage(t, scene, []string{"mark1"})
		require.NoError(t, err)
		require.Equal(t, actions.OutcomeStaged, result.Outcome)
		require.Equal(t, []string{"mark1"}, result.Staged)

		staged, err := scene.Repo.StagedFiles()
		require.NoError(t, err)
		require.Equal(t, []string{"mark1"}, staged)
	})

	t.Run("aborts without staging when the index is dirty", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CommitFile("mark1", "initial", "init"); err != nil {
				return err
			}
			return s.Repo.CommitFile("unrelated.txt", "initial", "add unrelated")
		})
		require.NoError(t, scene.Repo.WriteFile("mark1", "changed"))
		require.NoError(t, scene.Repo.WriteFile("unrelated.txt", "changed"))
		require.NoError(t, scene.Repo.StageFile("unrelated.txt"))

		result, err := stage(t, scene, []string{"mark1"})
		require.NoError(t, err)
		require.Equal(t, actions.OutcomeDirtyIndex, result.Outcome)
		require.Empty(t, result.Staged)

		staged, err := scene.Repo.StagedFiles()
		require.NoError(t, err)
		require.Equal(t, []string{"unrelated.txt"}, staged, "the pre-existing staged file must be the only one")
	})

	t.Run("ignores modified files outside the allow list", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CommitFile("mark1", "initial", "init"); err != nil {
				return err
			}
			return s.Repo.CommitFile("other.txt", "initial", "add other")
		})
		require.NoError(t, scene.Repo.WriteFile("mark1", "changed"))
		require.NoError(t, scene.Repo.WriteFile("other.txt", "changed"))

		result, err := stage(t, scene, []string{"mark1", "mark2"})
		require.NoError(t, err)
		require.Equal(t, actions.OutcomeStaged, result.Outcome)
		require.Equal(t, []string{"mark1"}, result.Staged)

		staged, err := scene.Repo.StagedFiles()
		require.NoError(t, err)
		require.Equal(t, []string{"mark1"}, staged)
	})

	t.Run("fails on a deleted mark file without staging anything", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("mark1", "initial", "init")
		})
		require.NoError(t, scene.Repo.DeleteFile("mark1"))

		_, err := stage(t, scene, []string{"mark1"})
		require.Error(t, err)
		require.ErrorIs(t, err, markstageerrors.ErrUnexpectedStatus)

		staged, stagedErr := scene.Repo.StagedFiles()
		require.NoError(t, stagedErr)
		require.Empty(t, staged)
	})

	t.Run("fails on an untracked mark file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("mark1", "new file"))

		_, err := stage(t, scene, []string{"mark1"})
		require.Error(t, err)
		require.ErrorIs(t, err, markstageerrors.ErrUnexpectedStatus)

		var unexpected *markstageerrors.UnexpectedStatusError
		require.ErrorAs(t, err, &unexpected)
		require.Equal(t, "mark1", unexpected.Path)
	})

	t.Run("reports no mark files when none changed", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("mark1", "initial", "init")
		})

		result, err := stage(t, scene, []string{"mark1", "mark2"})
		require.NoError(t, err)
		require.Equal(t, actions.OutcomeNoMarkFiles, result.Outcome)
		require.Empty(t, result.Staged)
	})

	t.Run("validates every mark file before staging any", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CommitFile("mark1", "initial", "init"); err != nil {
				return err
			}
			return s.Repo.CommitFile("mark2", "initial", "add mark2")
		})
		require.NoError(t, scene.Repo.WriteFile("mark1", "changed"))
		require.NoError(t, scene.Repo.DeleteFile("mark2"))

		_, err := stage(t, scene, []string{"mark1", "mark2"})
		require.Error(t, err)
		require.ErrorIs(t, err, markstageerrors.ErrUnexpectedStatus)

		staged, stagedErr := scene.Repo.StagedFiles()
		require.NoError(t, stagedErr)
		require.Empty(t, staged, "a later policy violation must leave the index untouched")
	})

	t.Run("second run aborts instead of re-staging", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CommitFile("mark1", "initial", "init")
		})
		require.NoError(t, scene.Repo.WriteFile("mark1", "changed"))

		first, err := stage(t, scene, []string{"mark1"})
		require.NoError(t, err)
		require.Equal(t, actions.OutcomeStaged, first.Outcome)

		second, err := stage(t, scene, []string{"mark1"})
		require.NoError(t, err)
		require.Equal(t, actions.OutcomeDirtyIndex, second.Outcome)
		require.Empty(t, second.Staged)
	})
}

// stage runs StageAction against the scene's repository with output
// captured away from the test log.
func stage(t *testing.T, scene *testhelpers.Scene, autoFiles []string) (*actions.StageResult, error) {
	t.Helper()

	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)

	ctx := runtime.NewContext(repo)
	ctx.Splog = output.NewSplogWithWriter(&bytes.Buffer{})

	return actions.StageAction(ctx, actions.StageOptions{AutoFiles: autoFiles})
}
