// Package idgen allocates record identifiers.
//
// One monotonic counter per kind is persisted as a small text file under
// counters/<kind>; identifiers are formatted as <PREFIX>-<zero-padded
// sequence> ("REQ-007"). Counters survive restarts because NextID always
// reads the persisted value, never a cached one.
//
// Concurrency: the read-increment-persist sequence crosses two substrate
// calls, so two in-flight allocations for the same kind could otherwise
// both observe the same counter value and hand out duplicate IDs. The
// allocator closes that race with a single serialization point: a per-kind
// mutex held across the whole sequence. NextID is the only counter mutator;
// there is no retry path because nothing can interleave.
package idgen

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/substrate"
)

// counterFolder holds one counter file per kind.
const counterFolder = "counters"

// Allocator hands out identifiers for every record kind.
//
// Thread-safety: safe for concurrent use. Allocations for the same kind are
// linearized; different kinds proceed independently.
type Allocator struct {
	sub substrate.Substrate

	mu    sync.Mutex
	kinds map[string]*sync.Mutex
}

// New creates an allocator over the given substrate.
func New(sub substrate.Substrate) *Allocator {
	return &Allocator{
		sub:   sub,
		kinds: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing allocations for one kind.
func (a *Allocator) lockFor(kind artifact.Kind) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, ok := a.kinds[kind.Name]
	if !ok {
		m = &sync.Mutex{}
		a.kinds[kind.Name] = m
	}
	return m
}

func counterPath(kind artifact.Kind) string {
	return counterFolder + "/" + kind.Name
}

// NextID allocates the next identifier for kind and persists the advanced
// counter before returning. A missing counter file counts as zero; a
// corrupt one is surfaced as an error rather than silently restarted,
// because restarting would re-issue identifiers of existing records
// (Recalculate repairs it).
func (a *Allocator) NextID(ctx context.Context, kind artifact.Kind) (string, error) {
	lock := a.lockFor(kind)
	lock.Lock()
	defer lock.Unlock()

	current, err := a.readCounter(ctx, kind)
	if err != nil {
		return "", err
	}
	next := current + 1
	if err := a.writeCounter(ctx, kind, next); err != nil {
		return "", err
	}
	return FormatID(kind, next), nil
}

// Recalculate rescans the kind's storage folder and resets the counter to
// the highest numeric suffix found (zero when the folder is empty). Used to
// repair drift, e.g. after an import wrote records with externally assigned
// identifiers. Returns the value the counter was reset to.
func (a *Allocator) Recalculate(ctx context.Context, kind artifact.Kind) (int64, error) {
	lock := a.lockFor(kind)
	lock.Lock()
	defer lock.Unlock()

	names, err := a.sub.ListFiles(ctx, kind.Folder)
	if err != nil {
		return 0, fmt.Errorf("recalculate %s counter: %w", kind.Name, err)
	}
	var max int64
	for _, name := range names {
		id := strings.TrimSuffix(name, artifact.RecordExt)
		seq, ok := ParseSeq(kind, id)
		if !ok {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	if err := a.writeCounter(ctx, kind, max); err != nil {
		return 0, err
	}
	return max, nil
}

// Current returns the persisted counter value without advancing it.
func (a *Allocator) Current(ctx context.Context, kind artifact.Kind) (int64, error) {
	lock := a.lockFor(kind)
	lock.Lock()
	defer lock.Unlock()
	return a.readCounter(ctx, kind)
}

func (a *Allocator) readCounter(ctx context.Context, kind artifact.Kind) (int64, error) {
	text, err := a.sub.ReadFile(ctx, counterPath(kind))
	if err != nil {
		if errors.Is(err, substrate.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("read %s counter: %w", kind.Name, err)
	}
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt %s counter %q: %w", kind.Name, strings.TrimSpace(text), err)
	}
	return value, nil
}

func (a *Allocator) writeCounter(ctx context.Context, kind artifact.Kind, value int64) error {
	if err := a.sub.EnsureDir(ctx, counterFolder); err != nil {
		return fmt.Errorf("write %s counter: %w", kind.Name, err)
	}
	if err := a.sub.WriteFile(ctx, counterPath(kind), strconv.FormatInt(value, 10)); err != nil {
		return fmt.Errorf("write %s counter: %w", kind.Name, err)
	}
	return nil
}

// FormatID renders identifier number n for kind. Sequences are zero-padded
// to three digits; wider values keep all their digits, never truncated.
func FormatID(kind artifact.Kind, n int64) string {
	return fmt.Sprintf("%s-%03d", kind.Prefix, n)
}

// ParseSeq extracts the numeric suffix of an identifier of the given kind.
// Returns false for identifiers of other kinds or malformed ones.
func ParseSeq(kind artifact.Kind, id string) (int64, bool) {
	rest, ok := strings.CutPrefix(id, kind.Prefix+"-")
	if !ok || rest == "" {
		return 0, false
	}
	seq, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}
