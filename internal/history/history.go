// Package history exposes the append-only revision log of a record's
// storage path.
//
// Entries come back newest-first, fixed by contract so revision browsers
// can render without re-sorting. Nothing here ever edits or removes an
// entry; the substrate's commit log is the single source of truth.
package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/substrate"
)

// ErrUnknownKind is returned for identifiers whose prefix maps to no kind.
var ErrUnknownKind = errors.New("history: unknown record kind")

// ErrNoSnapshots is returned by ContentAt when the substrate cannot
// reproduce historical file content.
var ErrNoSnapshots = errors.New("history: substrate keeps no snapshots")

// Revision is one change entry of a record: an opaque content reference,
// the human-readable message the mutation carried, the author, and the
// commit time in epoch milliseconds.
type Revision struct {
	Ref       string
	Message   string
	Author    string
	Timestamp int64
}

// Service reads revision histories off a substrate.
type Service struct {
	sub substrate.Substrate
}

// NewService creates a history service.
func NewService(sub substrate.Substrate) *Service {
	return &Service{sub: sub}
}

// ForPath returns the revisions of a storage path, newest first. A path
// with no commits yields an empty list, not an error.
func (s *Service) ForPath(ctx context.Context, path string) ([]Revision, error) {
	commits, err := s.sub.Log(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("history of %s: %w", path, err)
	}
	revisions := make([]Revision, len(commits))
	for i, c := range commits {
		revisions[i] = Revision{
			Ref:       c.Ref,
			Message:   c.Message,
			Author:    c.Author,
			Timestamp: c.Timestamp,
		}
	}
	return revisions, nil
}

// ForRecord returns the revisions of a record identifier, inferring its
// storage path from the identifier prefix.
func (s *Service) ForRecord(ctx context.Context, id string) ([]Revision, error) {
	path, err := recordPath(id)
	if err != nil {
		return nil, err
	}
	return s.ForPath(ctx, path)
}

// ContentAt returns the text a record had at the given revision.
// ErrNoSnapshots when the substrate cannot look back in time.
func (s *Service) ContentAt(ctx context.Context, id, ref string) (string, error) {
	path, err := recordPath(id)
	if err != nil {
		return "", err
	}
	snap, ok := s.sub.(substrate.Snapshotter)
	if !ok {
		return "", ErrNoSnapshots
	}
	content, err := snap.FileAt(ctx, ref, path)
	if err != nil {
		return "", fmt.Errorf("content of %s at %s: %w", id, ref, err)
	}
	return content, nil
}

func recordPath(id string) (string, error) {
	kind, ok := artifact.KindForID(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, id)
	}
	return kind.RecordPath(id), nil
}
