package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	ErrRevisionNotFound  = errors.New("revision not found")
	ErrPathNotInRevision = errors.New("path not present in revision")
)

// MaxFileSize is the largest input we'll compare (10MB)
const MaxFileSize = 10 * 1024 * 1024

// GitService reads file contents from a git repository
type GitService struct {
	repo *git.Repository
	root string
}

// NewGitService opens the repository containing dir
func NewGitService(dir string) (*GitService, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &GitService{repo: repo, root: worktree.Filesystem.Root()}, nil
}

// RootPath returns the worktree root
func (gs *GitService) RootPath() string {
	return gs.root
}

// ReadAtRevision returns the content of path as of rev. path may be absolute
// or relative to the current directory; it must lie inside the worktree.
func (gs *GitService) ReadAtRevision(rev, path string) (string, error) {
	commit, err := gs.resolveCommit(rev)
	if err != nil {
		return "", err
	}

	rel, err := gs.repoRelative(path)
	if err != nil {
		return "", err
	}

	file, err := commit.File(rel)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", fmt.Errorf("%s at %s: %w", rel, rev, ErrPathNotInRevision)
		}
		return "", fmt.Errorf("failed to get file %s from %s: %w", rel, rev, err)
	}
	if file.Size > MaxFileSize {
		return "", fmt.Errorf("file %s too large to diff (%d > %d)", rel, file.Size, MaxFileSize)
	}

	reader, err := file.Reader()
	if err != nil {
		return "", fmt.Errorf("failed to open file %s from %s: %w", rel, rev, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s from %s: %w", rel, rev, err)
	}
	return normalizeNewlines(string(content)), nil
}

func (gs *GitService) resolveCommit(rev string) (*object.Commit, error) {
	hash, err := gs.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rev, ErrRevisionNotFound)
	}
	commit, err := gs.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", rev, err)
	}
	return commit, nil
}

// repoRelative converts path into the slash-separated form git trees use
func (gs *GitService) repoRelative(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	// The worktree root may itself be reached through a symlink (e.g. /tmp on macOS).
	if resolved, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(resolved, filepath.Base(abs))
	}
	root := gs.root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%s is outside repository %s", path, gs.root)
	}
	return filepath.ToSlash(rel), nil
}
