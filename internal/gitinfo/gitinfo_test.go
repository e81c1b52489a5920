package gitinfo

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# hi"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	return dir
}

func TestIsRepo(t *testing.T) {
	require.False(t, IsRepo(t.TempDir()))
	require.True(t, IsRepo(initRepoWithCommit(t)))
}

func TestHead(t *testing.T) {
	dir := initRepoWithCommit(t)

	branch, sha, err := Head(dir)
	require.NoError(t, err)
	require.NotEmpty(t, branch)
	require.Len(t, sha, 40)
}

func TestHead_NotARepo(t *testing.T) {
	_, _, err := Head(t.TempDir())
	require.Error(t, err)
}
