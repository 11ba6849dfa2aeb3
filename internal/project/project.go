// Package project wires the engine together: one substrate, one allocator,
// a store per record kind, and the graph, history, and workflow services on
// top. Consumers (the UI layer, the CLI) hold a *Project and never touch
// the wiring themselves.
package project

import (
	"context"
	"fmt"
	"io"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/config"
	"github.com/roach88/reqtrace/internal/history"
	"github.com/roach88/reqtrace/internal/idgen"
	"github.com/roach88/reqtrace/internal/links"
	"github.com/roach88/reqtrace/internal/store"
	"github.com/roach88/reqtrace/internal/substrate"
	"github.com/roach88/reqtrace/internal/validate"
	"github.com/roach88/reqtrace/internal/workflow"
)

// Project is an open ReqTrace project: every store and service sharing one
// substrate and one identifier allocator.
type Project struct {
	Config config.Config

	Substrate substrate.Substrate
	Alloc     *idgen.Allocator

	Requirements *store.Store[*artifact.Requirement]
	UseCases     *store.Store[*artifact.UseCase]
	TestCases    *store.Store[*artifact.TestCase]
	Risks        *store.Store[*artifact.Risk]
	Information  *store.Store[*artifact.Information]
	Attributes   *store.Store[*artifact.AttributeDefinition]

	Workflows *workflow.Service
	Links     *links.Service
	History   *history.Service

	closer io.Closer
}

// Open opens the project described by cfg, creating storage as needed.
func Open(cfg config.Config) (*Project, error) {
	var (
		sub    substrate.Substrate
		closer io.Closer
		err    error
	)
	switch cfg.Storage.Backend {
	case config.BackendGit:
		sub, err = substrate.OpenGit(cfg.Storage.Path, cfg.Author.Name, cfg.Author.Email)
	case config.BackendSQLite:
		var db *substrate.SQLiteFS
		db, err = substrate.OpenSQLite(cfg.Storage.Path)
		if err == nil {
			if cfg.Author.Name != "" {
				db.Author = cfg.Author.Name
			}
			sub, closer = db, db
		}
	default:
		err = fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	p := New(sub, cfg)
	p.closer = closer
	return p, nil
}

// New assembles a project over an already-open substrate. Tests use it with
// the memory substrate.
func New(sub substrate.Substrate, cfg config.Config) *Project {
	alloc := idgen.New(sub)
	return &Project{
		Config:       cfg,
		Substrate:    sub,
		Alloc:        alloc,
		Requirements: store.Requirements(sub, alloc),
		UseCases:     store.UseCases(sub, alloc),
		TestCases:    store.TestCases(sub, alloc),
		Risks:        store.Risks(sub, alloc),
		Information:  store.Information(sub, alloc),
		Attributes:   store.Attributes(sub, alloc),
		Workflows:    workflow.NewService(sub, alloc),
		Links:        links.NewService(sub, alloc),
		History:      history.NewService(sub),
	}
}

// Initialize creates every kind's storage folder. Idempotent.
func (p *Project) Initialize(ctx context.Context) error {
	stores := []interface {
		Initialize(context.Context) error
	}{
		p.Requirements,
		p.UseCases,
		p.TestCases,
		p.Risks,
		p.Information,
		p.Attributes,
		p.Workflows,
		p.Links,
	}
	for _, s := range stores {
		if err := s.Initialize(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the substrate when it holds resources (sqlite).
func (p *Project) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// CreateAttribute validates an attribute definition against the existing
// ones (case-insensitive name uniqueness, dropdown/options invariant) and
// persists it. This is the call-site validation the store itself does not
// repeat.
func (p *Project) CreateAttribute(ctx context.Context, def *artifact.AttributeDefinition) (*artifact.AttributeDefinition, error) {
	existing, err := p.Attributes.LoadAll(ctx, true)
	if err != nil {
		return nil, err
	}
	if err := validate.AttributeDefinition(def, existing); err != nil {
		return nil, err
	}
	return p.Attributes.Create(ctx, def)
}

// UpdateAttribute revalidates and persists an existing definition.
func (p *Project) UpdateAttribute(ctx context.Context, def *artifact.AttributeDefinition) (*artifact.AttributeDefinition, error) {
	existing, err := p.Attributes.LoadAll(ctx, true)
	if err != nil {
		return nil, err
	}
	if err := validate.AttributeDefinition(def, existing); err != nil {
		return nil, err
	}
	return p.Attributes.Update(ctx, def)
}

// AttributeNameExists is the uniqueness check consumers run before
// offering a name in the UI.
func (p *Project) AttributeNameExists(ctx context.Context, name, excludeID string) (bool, error) {
	existing, err := p.Attributes.LoadAll(ctx, true)
	if err != nil {
		return false, err
	}
	return validate.NameExists(name, existing, excludeID), nil
}
