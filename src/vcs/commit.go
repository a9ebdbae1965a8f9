// Package vcs records rewritten documents in the surrounding git repository.
package vcs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNothingToCommit is returned when the file matches what is already staged in HEAD.
var ErrNothingToCommit = errors.New("nothing to commit")

// ErrOtherChangesStaged is returned when the index already holds changes to
// files other than the one being committed.
var ErrOtherChangesStaged = errors.New("other changes are staged")

// Author identifies the commit author.
type Author struct {
	Name  string
	Email string
}

// CommitFile stages path and commits it on the current branch of the
// repository containing path. Only path is staged; unstaged changes in the
// worktree are left alone. The commit is refused with ErrOtherChangesStaged
// when the index already holds other staged paths. Returns the new commit hash.
func CommitFile(path, message string, author Author) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("vcs: resolving %s: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("vcs: opening repository for %s: %w", path, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("vcs: worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("vcs: %s is outside %s: %w", path, root, err)
	}
	rel = filepath.ToSlash(rel)

	before, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("vcs: status: %w", err)
	}
	var staged []string
	for file, s := range before {
		if file == rel || s.Staging == git.Unmodified || s.Staging == git.Untracked {
			continue
		}
		staged = append(staged, file)
	}
	if len(staged) > 0 {
		sort.Strings(staged)
		return "", fmt.Errorf("%w: %s", ErrOtherChangesStaged, strings.Join(staged, ", "))
	}

	if _, err := wt.Add(rel); err != nil {
		return "", fmt.Errorf("vcs: staging %s: %w", rel, err)
	}

	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("vcs: status: %w", err)
	}
	if s, ok := status[rel]; !ok || s.Staging == git.Unmodified {
		return "", ErrNothingToCommit
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("vcs: committing %s: %w", rel, err)
	}
	return hash.String(), nil
}
