package project

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/config"
	"github.com/roach88/reqtrace/internal/substrate"
	"github.com/roach88/reqtrace/internal/validate"
)

func newProject(t *testing.T) *Project {
	t.Helper()
	p := New(substrate.NewMemory(), config.Default("mem"))
	require.NoError(t, p.Initialize(context.Background()))
	return p
}

// TestEndToEnd drives the stack the way a consumer would: create records of
// several kinds, link them, trace, approve, and browse history.
func TestEndToEnd(t *testing.T) {
	ctx := context.Background()
	p := newProject(t)

	req, err := p.Requirements.Create(ctx, &artifact.Requirement{
		Title:    "The pump shall stop on overpressure",
		Status:   artifact.StatusDraft,
		Priority: artifact.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, "REQ-001", req.ID)

	uc, err := p.UseCases.Create(ctx, &artifact.UseCase{
		Title: "Operator triggers emergency stop",
		Actor: "operator",
	})
	require.NoError(t, err)
	assert.Equal(t, "UC-001", uc.ID)

	tc, err := p.TestCases.Create(ctx, &artifact.TestCase{
		Title:          "Overpressure stop",
		RequirementIDs: []string{req.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "TC-001", tc.ID)

	// Counters are per kind; each sequence started at 1.
	_, err = p.Risks.Create(ctx, &artifact.Risk{Title: "Sensor drift"})
	require.NoError(t, err)

	link, err := p.Links.Create(ctx, req.ID, uc.ID, artifact.LinkSatisfies, nil)
	require.NoError(t, err)
	_, err = p.Links.Create(ctx, tc.ID, req.ID, artifact.LinkVerifies, nil)
	require.NoError(t, err)

	in, err := p.Links.Incoming(ctx, uc.ID)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, link.ID, in[0].LinkID)
	assert.Equal(t, artifact.LinkSatisfiedBy, in[0].LinkType)
	assert.Equal(t, "requirement", in[0].SourceType)

	in, err = p.Links.Incoming(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, artifact.LinkVerifiedBy, in[0].LinkType)
	assert.Equal(t, "testcase", in[0].SourceType)

	wf, err := p.Workflows.Create(ctx, &artifact.Workflow{
		Title:       "Baseline review",
		ArtifactIDs: []string{req.ID, tc.ID},
	})
	require.NoError(t, err)
	_, err = p.Workflows.Approve(ctx, wf.ID, "carol", "")
	require.NoError(t, err)

	req.Status = artifact.StatusApproved
	_, err = p.Requirements.Update(ctx, req)
	require.NoError(t, err)

	revisions, err := p.History.ForRecord(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, revisions, 2)
	assert.Equal(t, "Update "+req.ID, revisions[0].Message)
	assert.Equal(t, "Create "+req.ID, revisions[1].Message)

	content, err := p.History.ContentAt(ctx, req.ID, revisions[1].Ref)
	require.NoError(t, err)
	assert.Contains(t, content, "status: draft")
}

func TestInitialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	p := newProject(t)
	require.NoError(t, p.Initialize(ctx))
}

func TestCreateAttribute_Validates(t *testing.T) {
	ctx := context.Background()
	p := newProject(t)

	def, err := p.CreateAttribute(ctx, &artifact.AttributeDefinition{
		Name:      "Severity",
		Type:      artifact.AttributeText,
		AppliesTo: []string{"requirement"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ATTR-001", def.ID)

	_, err = p.CreateAttribute(ctx, &artifact.AttributeDefinition{
		Name: "severity",
		Type: artifact.AttributeText,
	})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = p.CreateAttribute(ctx, &artifact.AttributeDefinition{
		Name:    "Phase",
		Type:    artifact.AttributeDropdown,
		Options: []string{"only-one"},
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "options", verr.Field)
}

func TestUpdateAttribute_AllowsOwnName(t *testing.T) {
	ctx := context.Background()
	p := newProject(t)

	def, err := p.CreateAttribute(ctx, &artifact.AttributeDefinition{
		Name: "Severity",
		Type: artifact.AttributeText,
	})
	require.NoError(t, err)

	def.Description = "how bad it gets"
	updated, err := p.UpdateAttribute(ctx, def)
	require.NoError(t, err)
	assert.Equal(t, "how bad it gets", updated.Description)
}

func TestAttributeNameExists(t *testing.T) {
	ctx := context.Background()
	p := newProject(t)

	def, err := p.CreateAttribute(ctx, &artifact.AttributeDefinition{
		Name: "Severity",
		Type: artifact.AttributeText,
	})
	require.NoError(t, err)

	ok, err := p.AttributeNameExists(ctx, "SEVERITY", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.AttributeNameExists(ctx, "SEVERITY", def.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_GitBackend(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default(filepath.Join(t.TempDir(), "proj"))
	cfg.Author.Name = "Ada"
	cfg.Author.Email = "ada@example.com"

	p, err := Open(cfg)
	require.NoError(t, err)
	defer p.Close()
	require.NoError(t, p.Initialize(ctx))

	req, err := p.Requirements.Create(ctx, &artifact.Requirement{Title: "first"})
	require.NoError(t, err)

	revisions, err := p.History.ForRecord(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, "Ada", revisions[0].Author)
}

func TestOpen_SQLiteBackend(t *testing.T) {
	ctx := context.Background()
	var cfg config.Config
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.Path = filepath.Join(t.TempDir(), "reqtrace.db")

	p, err := Open(cfg)
	require.NoError(t, err)
	defer p.Close()
	require.NoError(t, p.Initialize(ctx))

	req, err := p.Requirements.Create(ctx, &artifact.Requirement{Title: "first"})
	require.NoError(t, err)

	loaded, err := p.Requirements.Load(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", loaded.Title)
}

func TestOpen_UnknownBackend(t *testing.T) {
	var cfg config.Config
	cfg.Storage.Backend = "postgres"
	cfg.Storage.Path = "x"

	_, err := Open(cfg)
	require.Error(t, err)
}
