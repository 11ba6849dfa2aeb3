package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/codec"
	"github.com/roach88/reqtrace/internal/idgen"
	"github.com/roach88/reqtrace/internal/substrate"
)

// Store persists records of one kind.
//
// T is the pointer type of the kind's record struct (*artifact.Requirement,
// ...). The zero value of T is nil, which read paths use for "not found".
type Store[T artifact.Record] struct {
	// Now supplies timestamps in epoch milliseconds. Tests pin it for
	// deterministic records.
	Now func() int64

	kind  artifact.Kind
	codec codec.Codec[T]
	sub   substrate.Substrate
	alloc *idgen.Allocator
}

// New creates a store for one kind. Prefer the per-kind constructors in
// kinds.go.
func New[T artifact.Record](sub substrate.Substrate, alloc *idgen.Allocator, kind artifact.Kind, c codec.Codec[T]) *Store[T] {
	return &Store[T]{
		Now:   func() int64 { return time.Now().UnixMilli() },
		kind:  kind,
		codec: c,
		sub:   sub,
		alloc: alloc,
	}
}

// Kind returns the kind this store persists.
func (s *Store[T]) Kind() artifact.Kind { return s.kind }

// Path returns the storage path of a record id.
func (s *Store[T]) Path(id string) string {
	return s.kind.RecordPath(id)
}

// Initialize ensures the kind's storage folder exists. Idempotent.
func (s *Store[T]) Initialize(ctx context.Context) error {
	if err := s.sub.EnsureDir(ctx, s.kind.Folder); err != nil {
		return fmt.Errorf("initialize %s store: %w", s.kind.Name, err)
	}
	return nil
}

// Create allocates a fresh identifier, stamps the creation and modification
// times, persists the record, and commits. The passed record is returned
// with its identifier set.
func (s *Store[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	id, err := s.alloc.NextID(ctx, s.kind)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", s.kind.Name, err)
	}
	record.SetRecordID(id)
	now := s.Now()
	record.SetCreatedAt(now)
	record.Touch(now)
	if err := s.Save(ctx, record, "Create "+id); err != nil {
		return zero, err
	}
	return record, nil
}

// Update bumps the record's lastModified, persists it, and commits.
// Full-record replacement: there are no partial patch semantics.
func (s *Store[T]) Update(ctx context.Context, record T) (T, error) {
	var zero T
	record.Touch(s.Now())
	if err := s.Save(ctx, record, "Update "+record.RecordID()); err != nil {
		return zero, err
	}
	return record, nil
}

// Save serializes and writes the record unconditionally (last writer wins)
// and, when message is non-empty, commits the path with it.
func (s *Store[T]) Save(ctx context.Context, record T, message string) error {
	id := record.RecordID()
	if id == "" {
		return fmt.Errorf("save %s: record has no id", s.kind.Name)
	}
	path := s.Path(id)
	if err := s.sub.WriteFile(ctx, path, s.codec.Serialize(record)); err != nil {
		return fmt.Errorf("save %s %s: %w", s.kind.Name, id, err)
	}
	if message != "" {
		if _, err := s.sub.CommitFile(ctx, path, message); err != nil {
			return fmt.Errorf("commit %s %s: %w", s.kind.Name, id, err)
		}
	}
	return nil
}

// Load reads one record. Returns (nil, nil) when the record does not exist
// or its file does not decode; substrate failures propagate.
func (s *Store[T]) Load(ctx context.Context, id string) (T, error) {
	var zero T
	text, err := s.sub.ReadFile(ctx, s.Path(id))
	if errors.Is(err, substrate.ErrNotFound) {
		return zero, nil
	}
	if err != nil {
		return zero, fmt.Errorf("load %s %s: %w", s.kind.Name, id, err)
	}
	record, ok := s.codec.Deserialize(text)
	if !ok {
		return zero, nil
	}
	return record, nil
}

// LoadAll enumerates every record in the kind's folder. Files that fail to
// decode are skipped silently, soft-deleted records filtered out unless
// includeDeleted. Order is not guaranteed; callers sort.
//
// LoadAll is best-effort enumeration, not a snapshot: concurrent writes may
// or may not be observed.
func (s *Store[T]) LoadAll(ctx context.Context, includeDeleted bool) ([]T, error) {
	names, err := s.sub.ListFiles(ctx, s.kind.Folder)
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", s.kind.Name, err)
	}
	var records []T
	for _, name := range names {
		if !strings.HasSuffix(name, artifact.RecordExt) {
			continue
		}
		text, err := s.sub.ReadFile(ctx, s.kind.Folder+"/"+name)
		if err != nil {
			// Raced deletion or unreadable entry; one bad file must not
			// abort the whole listing.
			continue
		}
		record, ok := s.codec.Deserialize(text)
		if !ok {
			continue
		}
		if record.Deleted() && !includeDeleted {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// SoftDelete marks the record deleted and persists it. A missing record is
// a no-op, not an error. Reversible: the storage unit stays in place.
func (s *Store[T]) SoftDelete(ctx context.Context, id string) error {
	record, err := s.Load(ctx, id)
	if err != nil {
		return err
	}
	if isNil(record) {
		return nil
	}
	record.MarkDeleted(s.Now())
	return s.Save(ctx, record, "Delete "+id)
}

// Delete removes the record's storage unit permanently and commits the
// removal. Irreversible. A missing record surfaces the substrate error.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	path := s.Path(id)
	if err := s.sub.DeleteFile(ctx, path); err != nil {
		return fmt.Errorf("delete %s %s: %w", s.kind.Name, id, err)
	}
	if _, err := s.sub.CommitFile(ctx, path, "Remove "+id); err != nil {
		return fmt.Errorf("commit %s %s: %w", s.kind.Name, id, err)
	}
	return nil
}

// Exists reports whether a decodable record with the id is present.
func (s *Store[T]) Exists(ctx context.Context, id string) (bool, error) {
	record, err := s.Load(ctx, id)
	if err != nil {
		return false, err
	}
	return !isNil(record), nil
}

// isNil reports whether the record interface holds a nil pointer. T is
// always a pointer type, so Load's "not found" result is a typed nil that
// a plain == nil on the interface would miss.
func isNil[T artifact.Record](record T) bool {
	v := reflect.ValueOf(record)
	return !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil())
}
