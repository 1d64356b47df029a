// Package git wraps go-git operations on the deployment checkout:
// opening the repository, reporting its state and pulling updates for
// the self-update command. The git CLI is never shelled out to.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// DefaultPullTimeout bounds a self-update pull to prevent indefinite
// hangs on unreachable remotes.
const DefaultPullTimeout = 60 * time.Second

// openRepo opens the git repository at path, traversing up the
// directory tree to find the repository root. An empty path means the
// current working directory.
func openRepo(path string) (*gogit.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsRepository checks whether path is inside a git repository.
func IsRepository(path string) bool {
	_, err := openRepo(path)
	return err == nil
}

// CurrentBranch returns the name of the checked-out branch, or empty
// in detached HEAD state.
func CurrentBranch(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// PullResult describes the outcome of a Pull.
type PullResult struct {
	// Updated is true when the pull fast-forwarded the checkout.
	Updated bool
	// Commit is the HEAD commit hash after the pull.
	Commit string
}

// Pull fast-forwards the checkout at path from its origin remote.
// A checkout that is already up to date is a success with
// Updated=false. Local modifications cause the pull to fail rather
// than be overwritten.
func Pull(ctx context.Context, path string) (*PullResult, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultPullTimeout)
	defer cancel()

	err = worktree.PullContext(ctx, &gogit.PullOptions{RemoteName: "origin"})
	upToDate := errors.Is(err, gogit.NoErrAlreadyUpToDate)
	if err != nil && !upToDate {
		return nil, fmt.Errorf("pulling from origin: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	return &PullResult{
		Updated: !upToDate,
		Commit:  head.Hash().String(),
	}, nil
}
