package substrate

import (
	"context"
	"errors"
)

// ErrNotFound is returned by ReadFile and DeleteFile when the path does not
// exist. Callers distinguish it from I/O failures with errors.Is.
var ErrNotFound = errors.New("substrate: not found")

// Commit is one entry in a path's history. Timestamp is epoch milliseconds.
type Commit struct {
	// Ref is an opaque content reference (git hash, row digest, UUID).
	Ref       string
	Message   string
	Author    string
	Timestamp int64
}

// Substrate stores text documents keyed by path, with an append-only commit
// log per path.
//
// All methods accept a context and honor cancellation at the call boundary.
// None of the methods retry; failures propagate to the caller unchanged.
type Substrate interface {
	// EnsureDir makes sure a folder exists. Idempotent.
	EnsureDir(ctx context.Context, folder string) error

	// ReadFile returns the current content of path, or ErrNotFound.
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFile replaces the content of path, creating it if needed.
	WriteFile(ctx context.Context, path, content string) error

	// DeleteFile removes path permanently. ErrNotFound if it does not exist.
	DeleteFile(ctx context.Context, path string) error

	// ListFiles returns the file names (not paths) directly inside folder.
	// A missing folder yields an empty list, not an error.
	ListFiles(ctx context.Context, folder string) ([]string, error)

	// CommitFile appends a history entry for path with the given message and
	// returns it. The entry records the path's content at commit time.
	CommitFile(ctx context.Context, path, message string) (Commit, error)

	// Log returns the commit history of path, newest first. A path with no
	// commits yields an empty list, not an error.
	Log(ctx context.Context, path string) ([]Commit, error)
}

// Snapshotter is implemented by substrates that can reproduce a path's
// content as of an earlier commit. All shipped backends implement it; it
// stays a separate interface because the engine core never needs it, only
// the revision-browsing layer does.
type Snapshotter interface {
	// FileAt returns the content path had at the commit identified by ref.
	// ErrNotFound if the ref is unknown or the path was absent in it.
	FileAt(ctx context.Context, ref, path string) (string, error)
}
