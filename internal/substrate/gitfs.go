package substrate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// DefaultAuthorName and DefaultAuthorEmail sign commits when the caller
// configures no identity. They match the signature the original desktop
// application used.
const (
	DefaultAuthorName  = "ReqTrace User"
	DefaultAuthorEmail = "user@reqtrace.local"
)

// GitFS stores documents as plain files under a root directory and keeps
// history in an embedded git repository at the same root.
//
// Every path handed to the engine is relative to root and slash-separated;
// GitFS converts to the platform separator internally. The repository is
// initialized lazily by OpenGit if the root holds none.
type GitFS struct {
	root        string
	repo        *git.Repository
	authorName  string
	authorEmail string
}

// OpenGit opens the project directory at root, initializing the directory
// and its git repository if needed. Idempotent.
func OpenGit(root, authorName, authorEmail string) (*GitFS, error) {
	if authorName == "" {
		authorName = DefaultAuthorName
	}
	if authorEmail == "" {
		authorEmail = DefaultAuthorEmail
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory %s: %w", root, err)
	}
	repo, err := git.PlainOpen(root)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(root, false)
	}
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", root, err)
	}
	return &GitFS{
		root:        root,
		repo:        repo,
		authorName:  authorName,
		authorEmail: authorEmail,
	}, nil
}

// Root returns the project directory.
func (g *GitFS) Root() string { return g.root }

func (g *GitFS) abs(path string) string {
	return filepath.Join(g.root, filepath.FromSlash(path))
}

// EnsureDir creates folder under the root. Idempotent.
func (g *GitFS) EnsureDir(ctx context.Context, folder string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(g.abs(folder), 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", folder, err)
	}
	return nil
}

// ReadFile returns the current content of path, or ErrNotFound.
func (g *GitFS) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(g.abs(path))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile replaces the content of path, creating parent directories as
// needed.
func (g *GitFS) WriteFile(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs := g.abs(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("create parent directory for %s: %w", path, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DeleteFile removes path. ErrNotFound if it does not exist.
func (g *GitFS) DeleteFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(g.abs(path))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// ListFiles returns the names of regular files directly inside folder.
// A missing folder yields an empty list.
func (g *GitFS) ListFiles(ctx context.Context, folder string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(g.abs(folder))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// CommitFile stages path (including its removal, when the file was deleted)
// and records a commit signed with the configured author.
func (g *GitFS) CommitFile(ctx context.Context, path, message string) (Commit, error) {
	if err := ctx.Err(); err != nil {
		return Commit{}, err
	}
	wt, err := g.repo.Worktree()
	if err != nil {
		return Commit{}, fmt.Errorf("commit %s: worktree: %w", path, err)
	}
	if _, err := wt.Add(filepath.FromSlash(path)); err != nil {
		return Commit{}, fmt.Errorf("commit %s: stage: %w", path, err)
	}
	now := time.Now()
	sig := &object.Signature{Name: g.authorName, Email: g.authorEmail, When: now}
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: true,
	})
	if err != nil {
		return Commit{}, fmt.Errorf("commit %s: %w", path, err)
	}
	return Commit{
		Ref:       hash.String(),
		Message:   message,
		Author:    g.authorName,
		Timestamp: now.UnixMilli(),
	}, nil
}

// Log returns the commits that touched path, newest first. An empty
// repository yields an empty list.
func (g *GitFS) Log(ctx context.Context, path string) ([]Commit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iter, err := g.repo.Log(&git.LogOptions{FileName: &path})
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", path, err)
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, Commit{
			Ref:       c.Hash.String(),
			Message:   strings.TrimRight(c.Message, "\n"),
			Author:    c.Author.Name,
			Timestamp: c.Author.When.UnixMilli(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", path, err)
	}
	return commits, nil
}

// FileAt returns the content path had at the commit identified by ref.
func (g *GitFS) FileAt(ctx context.Context, ref, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	commit, err := g.repo.CommitObject(plumbing.NewHash(ref))
	if err != nil {
		return "", fmt.Errorf("resolve commit %s: %w", ref, ErrNotFound)
	}
	file, err := commit.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("file %s at %s: %w", path, ref, err)
	}
	content, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("file %s at %s: %w", path, ref, err)
	}
	return content, nil
}
