// Package git provides branch operations backed by go-git.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// Client implements domain.Git on a local repository.
type Client struct {
	repo *gogit.Repository
	root string
}

// NewClient opens the repository containing dir, walking up like git does.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	root := dir
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return &Client{repo: repo, root: root}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return filepath.Clean(c.root)
}

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", errors.New("HEAD is detached")
	}
	return head.Name().Short(), nil
}

// BranchExists checks if a local branch exists.
func (c *Client) BranchExists(branch string) (bool, error) {
	_, err := c.repo.Reference(plumbing.NewBranchReferenceName(branch), false)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("check branch %q: %w", branch, err)
}

// CreateBranch creates a branch at HEAD and checks it out.
// Keep is set so a dirty working tree is carried over instead of rejected,
// matching `git checkout -b`.
func (c *Client) CreateBranch(branch string) error {
	return c.checkout(branch, true)
}

// CheckoutBranch checks out an existing branch.
func (c *Client) CheckoutBranch(branch string) error {
	return c.checkout(branch, false)
}

func (c *Client) checkout(branch string, create bool) error {
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: create,
		Keep:   true,
	})
	if err != nil {
		return fmt.Errorf("checkout branch %q: %w", branch, err)
	}
	return nil
}

// Ensure Client implements domain.Git.
var _ domain.Git = (*Client)(nil)
