package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/config"
	"github.com/roach88/reqtrace/internal/project"
)

// run executes the CLI with args and returns its combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// seedProject initializes a git-backed project in a temp directory and
// returns the config path plus the open project for seeding records.
func seedProject(t *testing.T) (string, *project.Project) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.DefaultFileName)

	cfg := config.Default(filepath.Join(dir, "project"))
	cfg.Project.Name = "demo"
	require.NoError(t, cfg.Save(cfgPath))

	p, err := project.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	require.NoError(t, p.Initialize(context.Background()))
	return cfgPath, p
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.DefaultFileName)

	out, err := run(t,
		"--config", cfgPath,
		"init", "--name", "demo", "--path", filepath.Join(dir, "project"))
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized project")

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Project.Name)

	_, err = run(t,
		"--config", cfgPath,
		"init", "--name", "demo", "--path", filepath.Join(dir, "project"))
	require.Error(t, err, "init must refuse to overwrite an existing config")
}

func TestListCommand(t *testing.T) {
	ctx := context.Background()
	cfgPath, p := seedProject(t)

	_, err := p.Requirements.Create(ctx, &artifact.Requirement{
		Title:  "Pump stops on overpressure",
		Status: artifact.StatusDraft,
	})
	require.NoError(t, err)
	deleted, err := p.Requirements.Create(ctx, &artifact.Requirement{Title: "Obsolete"})
	require.NoError(t, err)
	require.NoError(t, p.Requirements.SoftDelete(ctx, deleted.ID))

	out, err := run(t, "--config", cfgPath, "list", "requirement")
	require.NoError(t, err)
	assert.Contains(t, out, "REQ-001")
	assert.Contains(t, out, "Pump stops on overpressure")
	assert.NotContains(t, out, "REQ-002")

	out, err = run(t, "--config", cfgPath, "list", "requirement", "--deleted")
	require.NoError(t, err)
	assert.Contains(t, out, "REQ-002")

	_, err = run(t, "--config", cfgPath, "list", "gadget")
	require.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	ctx := context.Background()
	cfgPath, p := seedProject(t)

	req, err := p.Requirements.Create(ctx, &artifact.Requirement{
		Title:  "Pump stops on overpressure",
		Status: artifact.StatusDraft,
	})
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "show", req.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "id: REQ-001")
	assert.Contains(t, out, "title: Pump stops on overpressure")

	_, err = run(t, "--config", cfgPath, "show", "REQ-404")
	require.Error(t, err)

	_, err = run(t, "--config", cfgPath, "show", "bogus")
	require.Error(t, err)
}

func TestShowCommand_AtRevision(t *testing.T) {
	ctx := context.Background()
	cfgPath, p := seedProject(t)

	req, err := p.Requirements.Create(ctx, &artifact.Requirement{
		Title:  "Pump stops on overpressure",
		Status: artifact.StatusDraft,
	})
	require.NoError(t, err)
	req.Status = artifact.StatusApproved
	_, err = p.Requirements.Update(ctx, req)
	require.NoError(t, err)

	revisions, err := p.History.ForRecord(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, revisions, 2)

	out, err := run(t, "--config", cfgPath, "show", req.ID, "--at", revisions[1].Ref)
	require.NoError(t, err)
	assert.Contains(t, out, "status: draft")
}

func TestHistoryCommand(t *testing.T) {
	ctx := context.Background()
	cfgPath, p := seedProject(t)

	req, err := p.Requirements.Create(ctx, &artifact.Requirement{Title: "first"})
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "history", req.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Create REQ-001")

	out, err = run(t, "--config", cfgPath, "history", "REQ-404")
	require.NoError(t, err)
	assert.Contains(t, out, "no revisions")
}

func TestTraceCommand(t *testing.T) {
	ctx := context.Background()
	cfgPath, p := seedProject(t)

	_, err := p.Links.Create(ctx, "REQ-001", "UC-001", artifact.LinkSatisfies, nil)
	require.NoError(t, err)
	_, err = p.Links.Create(ctx, "REQ-001", "UC-002", artifact.LinkSatisfies, []string{"P1"})
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "trace", "REQ-001")
	require.NoError(t, err)
	assert.Contains(t, out, "outgoing (2):")
	assert.Contains(t, out, "REQ-001 --satisfies--> UC-001")

	out, err = run(t, "--config", cfgPath, "trace", "UC-001")
	require.NoError(t, err)
	assert.Contains(t, out, "incoming (1):")
	assert.Contains(t, out, "REQ-001 (requirement) --satisfied_by--> this")

	out, err = run(t, "--config", cfgPath, "trace", "REQ-001", "--project", "P2")
	require.NoError(t, err)
	assert.Contains(t, out, "outgoing (1):")
}

func TestRecalcCommand(t *testing.T) {
	ctx := context.Background()
	cfgPath, p := seedProject(t)

	// An import drops a record with an externally assigned ID; the counter
	// knows nothing about it until recalc.
	imported := &artifact.Requirement{Title: "imported"}
	imported.ID = "REQ-041"
	require.NoError(t, p.Requirements.Save(ctx, imported, "Import REQ-041"))

	out, err := run(t, "--config", cfgPath, "recalc", "requirement")
	require.NoError(t, err)
	assert.Contains(t, out, "counter = 41")

	next, err := p.Requirements.Create(ctx, &artifact.Requirement{Title: "after recalc"})
	require.NoError(t, err)
	assert.Equal(t, "REQ-042", next.ID)
}
