package substrate

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Substrate for tests.
//
// Commit refs are UUIDs, so two commits of identical content still get
// distinct references. Thread-safety: all methods lock an internal mutex,
// mirroring the per-call atomicity the real backends provide.
type Memory struct {
	// Author is recorded on commits. Defaults to "test".
	Author string

	mu        sync.Mutex
	files     map[string]string
	dirs      map[string]bool
	commits   map[string][]Commit
	snapshots map[string]string // ref -> content at commit time
}

// NewMemory creates an empty in-memory substrate.
func NewMemory() *Memory {
	return &Memory{
		Author:    "test",
		files:     make(map[string]string),
		dirs:      make(map[string]bool),
		commits:   make(map[string][]Commit),
		snapshots: make(map[string]string),
	}
}

// EnsureDir marks a folder as existing. Idempotent.
func (m *Memory) EnsureDir(ctx context.Context, folder string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[folder] = true
	return nil
}

// ReadFile returns the content of path, or ErrNotFound.
func (m *Memory) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[path]
	if !ok {
		return "", ErrNotFound
	}
	return content, nil
}

// WriteFile replaces the content of path.
func (m *Memory) WriteFile(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
	return nil
}

// DeleteFile removes path, or returns ErrNotFound.
func (m *Memory) DeleteFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok {
		return ErrNotFound
	}
	delete(m.files, path)
	return nil
}

// ListFiles returns the names of files directly inside folder, sorted.
func (m *Memory) ListFiles(ctx context.Context, folder string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := folder + "/"
	var names []string
	for path := range m.files {
		rest, ok := strings.CutPrefix(path, prefix)
		if !ok || strings.Contains(rest, "/") {
			continue
		}
		names = append(names, rest)
	}
	sort.Strings(names)
	return names, nil
}

// CommitFile appends a history entry for path.
func (m *Memory) CommitFile(ctx context.Context, path, message string) (Commit, error) {
	if err := ctx.Err(); err != nil {
		return Commit{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c := Commit{
		Ref:       uuid.NewString(),
		Message:   message,
		Author:    m.Author,
		Timestamp: time.Now().UnixMilli(),
	}
	m.commits[path] = append(m.commits[path], c)
	m.snapshots[c.Ref] = m.files[path]
	return c, nil
}

// FileAt returns the content path had when ref was committed.
func (m *Memory) FileAt(ctx context.Context, ref, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.snapshots[ref]
	if !ok {
		return "", ErrNotFound
	}
	return content, nil
}

// Log returns path's commits, newest first.
func (m *Memory) Log(ctx context.Context, path string) ([]Commit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	history := m.commits[path]
	out := make([]Commit, len(history))
	for i, c := range history {
		out[len(history)-1-i] = c
	}
	return out, nil
}
