package codec

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/reqtrace/internal/artifact"
)

// Golden fixtures pin the exact on-disk layout. A diff here means the
// storage format changed and existing project files may stop decoding.
//
// To regenerate, run:
//
//	go test ./internal/codec -update

func TestGolden_RequirementFull(t *testing.T) {
	r := &artifact.Requirement{
		Meta:        fullMeta("REQ-001"),
		Title:       "Login requires MFA",
		Description: "The system shall require a second factor at login.",
		Status:      artifact.StatusDraft,
		Priority:    artifact.PriorityHigh,
		Category:    "security",
		ParentIDs:   []string{"REQ-002", "REQ-003"},
	}
	g := goldie.New(t)
	g.Assert(t, "requirement_full", []byte(Requirement{}.Serialize(r)))
}

func TestGolden_RequirementMinimal(t *testing.T) {
	r := &artifact.Requirement{Meta: artifact.Meta{ID: "REQ-009"}}
	g := goldie.New(t)
	g.Assert(t, "requirement_minimal", []byte(Requirement{}.Serialize(r)))
}

func TestGolden_Link(t *testing.T) {
	l := &artifact.Link{
		Meta:       artifact.Meta{ID: "LINK-001", DateCreated: 1700000000000, LastModified: 1700000000000},
		SourceID:   "REQ-001",
		TargetID:   "UC-001",
		Type:       artifact.LinkSatisfies,
		ProjectIDs: []string{"P1"},
	}
	g := goldie.New(t)
	g.Assert(t, "link", []byte(Link{}.Serialize(l)))
}

func TestGolden_WorkflowApproved(t *testing.T) {
	w := &artifact.Workflow{
		Meta:            artifact.Meta{ID: "WF-001", DateCreated: 1700000000000, LastModified: 1700000002000},
		Title:           "Release sign-off",
		Description:     "Covers the 1.2 release scope.",
		CreatedBy:       "maria",
		AssignedTo:      "sam",
		Status:          artifact.WorkflowApproved,
		ArtifactIDs:     []string{"REQ-001", "TC-003"},
		ApprovedBy:      "sam",
		ApprovalDate:    1700000002000,
		ApproverComment: "Looks complete.",
	}
	g := goldie.New(t)
	g.Assert(t, "workflow_approved", []byte(Workflow{}.Serialize(w)))
}
