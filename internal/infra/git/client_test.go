package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// initTestRepo creates a repository with one commit so HEAD resolves.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("test\n"), 0o600))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestNewClient_NotARepository(t *testing.T) {
	_, err := NewClient(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}

func TestClient_CreateAndCheckoutBranch(t *testing.T) {
	dir := initTestRepo(t)
	c, err := NewClient(dir)
	require.NoError(t, err)

	initial, err := c.CurrentBranch()
	require.NoError(t, err)

	exists, err := c.BranchExists("DMO-1/write-spec")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, c.CreateBranch("DMO-1/write-spec"))

	current, err := c.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "DMO-1/write-spec", current)

	exists, err = c.BranchExists("DMO-1/write-spec")
	require.NoError(t, err)
	assert.True(t, exists)

	// Back and forth between existing branches.
	require.NoError(t, c.CheckoutBranch(initial))
	current, err = c.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, initial, current)

	require.NoError(t, c.CheckoutBranch("DMO-1/write-spec"))
	current, err = c.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "DMO-1/write-spec", current)
}

func TestClient_CreateBranchTwice(t *testing.T) {
	dir := initTestRepo(t)
	c, err := NewClient(dir)
	require.NoError(t, err)

	require.NoError(t, c.CreateBranch("DMO-2/fix-bug"))
	assert.Error(t, c.CreateBranch("DMO-2/fix-bug"), "creating an existing branch must fail")
}

func TestClient_OpensFromSubdirectory(t *testing.T) {
	dir := initTestRepo(t)
	sub := filepath.Join(dir, "pkg", "nested")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	c, err := NewClient(sub)
	require.NoError(t, err)
	_, err = c.CurrentBranch()
	assert.NoError(t, err)
}
