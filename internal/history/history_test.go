package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/reqtrace/internal/substrate"
)

func TestForRecord_NewestFirst(t *testing.T) {
	ctx := context.Background()
	sub := substrate.NewMemory()
	s := NewService(sub)

	const path = "requirements/REQ-001.md"
	require.NoError(t, sub.WriteFile(ctx, path, "v1"))
	_, err := sub.CommitFile(ctx, path, "Create REQ-001")
	require.NoError(t, err)
	require.NoError(t, sub.WriteFile(ctx, path, "v2"))
	_, err = sub.CommitFile(ctx, path, "Update REQ-001")
	require.NoError(t, err)

	revisions, err := s.ForRecord(ctx, "REQ-001")
	require.NoError(t, err)
	require.Len(t, revisions, 2)
	assert.Equal(t, "Update REQ-001", revisions[0].Message)
	assert.Equal(t, "Create REQ-001", revisions[1].Message)
	assert.NotEmpty(t, revisions[0].Ref)
	assert.Equal(t, "test", revisions[0].Author)
}

func TestForRecord_UnknownPrefix(t *testing.T) {
	ctx := context.Background()
	s := NewService(substrate.NewMemory())

	_, err := s.ForRecord(ctx, "XYZ-001")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestForPath_NoCommits(t *testing.T) {
	ctx := context.Background()
	s := NewService(substrate.NewMemory())

	revisions, err := s.ForPath(ctx, "requirements/REQ-001.md")
	require.NoError(t, err)
	assert.Empty(t, revisions)
}

func TestContentAt(t *testing.T) {
	ctx := context.Background()
	sub := substrate.NewMemory()
	s := NewService(sub)

	const path = "requirements/REQ-001.md"
	require.NoError(t, sub.WriteFile(ctx, path, "v1"))
	first, err := sub.CommitFile(ctx, path, "Create REQ-001")
	require.NoError(t, err)
	require.NoError(t, sub.WriteFile(ctx, path, "v2"))
	_, err = sub.CommitFile(ctx, path, "Update REQ-001")
	require.NoError(t, err)

	content, err := s.ContentAt(ctx, "REQ-001", first.Ref)
	require.NoError(t, err)
	assert.Equal(t, "v1", content)
}

func TestContentAt_UnknownRef(t *testing.T) {
	ctx := context.Background()
	sub := substrate.NewMemory()
	s := NewService(sub)

	_, err := s.ContentAt(ctx, "REQ-001", "no-such-ref")
	assert.ErrorIs(t, err, substrate.ErrNotFound)
}

type flatSubstrate struct {
	substrate.Substrate
}

func TestContentAt_NoSnapshots(t *testing.T) {
	ctx := context.Background()
	s := NewService(flatSubstrate{substrate.NewMemory()})

	_, err := s.ContentAt(ctx, "REQ-001", "ref")
	assert.ErrorIs(t, err, ErrNoSnapshots)
}
