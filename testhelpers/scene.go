package testhelpers

import (
	"os"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "markstage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// BasicSceneSetup is a setup function that creates a scene with a single committed file.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CommitFile("README.md", "hello", "initial commit")
}
