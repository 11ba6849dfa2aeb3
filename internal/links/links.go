// Package links is the traceability graph: directed, typed edges between
// record identifiers, stored as small records of their own (LINK-nnn) and
// never owned by either endpoint.
//
// Incoming edges are presented from the target's point of view through the
// inverse relationship vocabulary: a parent edge pointing at X appears to X
// as a child relationship to the edge's source. Project scoping restricts
// an edge's visibility to a subset of projects; an empty project list means
// globally visible.
//
// Deliberately preserved behavior: self-links (source == target) are legal,
// and deleting a record does not cascade to edges referencing it, so edges
// may dangle. Duplicate edges are permitted at creation time; Exists is the
// advisory check callers should run first.
package links

import (
	"context"
	"fmt"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/idgen"
	"github.com/roach88/reqtrace/internal/store"
	"github.com/roach88/reqtrace/internal/substrate"
)

// IncomingView is an edge seen from its target: the relationship label is
// the inverse of the stored type, and the source's kind is inferred from
// its identifier prefix.
type IncomingView struct {
	LinkID     string
	SourceID   string
	SourceType string
	LinkType   artifact.LinkType
}

// Service answers graph queries over the link store.
type Service struct {
	links *store.Store[*artifact.Link]
}

// NewService creates a link graph service on the shared substrate.
func NewService(sub substrate.Substrate, alloc *idgen.Allocator) *Service {
	return &Service{links: store.Links(sub, alloc)}
}

// Initialize ensures the link folder exists. Idempotent.
func (s *Service) Initialize(ctx context.Context) error {
	return s.links.Initialize(ctx)
}

// Create allocates a LINK id, persists the edge, and returns it. No
// uniqueness constraint: a duplicate (source, target, type) edge is stored
// as-is. Unknown relationship types are rejected so the inverse projection
// stays total.
func (s *Service) Create(ctx context.Context, sourceID, targetID string, linkType artifact.LinkType, projectIDs []string) (*artifact.Link, error) {
	if !artifact.ValidLinkType(linkType) {
		return nil, fmt.Errorf("create link %s -> %s: unknown relationship type %q", sourceID, targetID, linkType)
	}
	if sourceID == "" || targetID == "" {
		return nil, fmt.Errorf("create link: source and target are required")
	}
	link := &artifact.Link{
		SourceID:   sourceID,
		TargetID:   targetID,
		Type:       linkType,
		ProjectIDs: projectIDs,
	}
	return s.links.Create(ctx, link)
}

// Delete removes an edge permanently.
func (s *Service) Delete(ctx context.Context, linkID string) error {
	return s.links.Delete(ctx, linkID)
}

// All returns every stored edge.
func (s *Service) All(ctx context.Context) ([]*artifact.Link, error) {
	return s.links.LoadAll(ctx, false)
}

// Outgoing returns the edges whose source is artifactID.
func (s *Service) Outgoing(ctx context.Context, artifactID string) ([]*artifact.Link, error) {
	return s.outgoing(ctx, artifactID, "", false)
}

// OutgoingForProject returns Outgoing filtered to edges visible to the
// project.
func (s *Service) OutgoingForProject(ctx context.Context, artifactID, projectID string) ([]*artifact.Link, error) {
	return s.outgoing(ctx, artifactID, projectID, true)
}

func (s *Service) outgoing(ctx context.Context, artifactID, projectID string, scoped bool) ([]*artifact.Link, error) {
	all, err := s.links.LoadAll(ctx, false)
	if err != nil {
		return nil, err
	}
	var out []*artifact.Link
	for _, l := range all {
		if l.SourceID != artifactID {
			continue
		}
		if scoped && !visibleTo(l, projectID) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// Incoming returns the edges whose target is artifactID, projected to the
// target's point of view.
func (s *Service) Incoming(ctx context.Context, artifactID string) ([]IncomingView, error) {
	return s.incoming(ctx, artifactID, "", false)
}

// IncomingForProject returns Incoming filtered to edges visible to the
// project.
func (s *Service) IncomingForProject(ctx context.Context, artifactID, projectID string) ([]IncomingView, error) {
	return s.incoming(ctx, artifactID, projectID, true)
}

func (s *Service) incoming(ctx context.Context, artifactID, projectID string, scoped bool) ([]IncomingView, error) {
	all, err := s.links.LoadAll(ctx, false)
	if err != nil {
		return nil, err
	}
	var in []IncomingView
	for _, l := range all {
		if l.TargetID != artifactID {
			continue
		}
		if scoped && !visibleTo(l, projectID) {
			continue
		}
		inverse, ok := artifact.Inverse(l.Type)
		if !ok {
			// Create rejects unknown types, so this is a hand-edited file;
			// skip rather than present a bogus label.
			continue
		}
		in = append(in, IncomingView{
			LinkID:     l.ID,
			SourceID:   l.SourceID,
			SourceType: sourceType(l.SourceID),
			LinkType:   inverse,
		})
	}
	return in, nil
}

// Exists reports whether an edge from sourceID to targetID exists. A
// non-empty linkType restricts the check to that relationship type. This is
// the advisory pre-create check: it approximates "at most one edge per
// (source, target, type)" at the application level, the store itself never
// enforces it.
func (s *Service) Exists(ctx context.Context, sourceID, targetID string, linkType artifact.LinkType) (bool, error) {
	all, err := s.links.LoadAll(ctx, false)
	if err != nil {
		return false, err
	}
	for _, l := range all {
		if l.SourceID != sourceID || l.TargetID != targetID {
			continue
		}
		if linkType != "" && l.Type != linkType {
			continue
		}
		return true, nil
	}
	return false, nil
}

// VisibleToProject returns the edges visible to projectID: globally visible
// edges plus those explicitly scoped to it.
func (s *Service) VisibleToProject(ctx context.Context, projectID string) ([]*artifact.Link, error) {
	all, err := s.links.LoadAll(ctx, false)
	if err != nil {
		return nil, err
	}
	var visible []*artifact.Link
	for _, l := range all {
		if visibleTo(l, projectID) {
			visible = append(visible, l)
		}
	}
	return visible, nil
}

func visibleTo(l *artifact.Link, projectID string) bool {
	if len(l.ProjectIDs) == 0 {
		return true
	}
	for _, p := range l.ProjectIDs {
		if p == projectID {
			return true
		}
	}
	return false
}

// sourceType names the kind of an endpoint identifier. Unknown prefixes
// come back as "unknown" rather than failing the projection; the graph
// stores dangling and foreign identifiers without complaint.
func sourceType(id string) string {
	kind, ok := artifact.KindForID(id)
	if !ok {
		return "unknown"
	}
	return kind.Name
}
