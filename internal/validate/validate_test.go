package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/reqtrace/internal/artifact"
)

func textDef(name string) *artifact.AttributeDefinition {
	return &artifact.AttributeDefinition{
		Name:      name,
		Type:      artifact.AttributeText,
		AppliesTo: []string{"requirement"},
	}
}

func TestEqualNames(t *testing.T) {
	assert.True(t, EqualNames("Severity", "severity"))
	assert.True(t, EqualNames("  Severity ", "SEVERITY"))
	assert.True(t, EqualNames("straße", "STRASSE"))
	assert.False(t, EqualNames("Severity", "Priority"))
}

func TestNameExists(t *testing.T) {
	existing := []*artifact.AttributeDefinition{
		textDef("Severity"),
		textDef("Owner"),
	}
	existing[0].ID = "ATTR-001"
	existing[1].ID = "ATTR-002"

	assert.True(t, NameExists("severity", existing, ""))
	assert.False(t, NameExists("severity", existing, "ATTR-001"), "a record may keep its own name")

	existing[0].IsDeleted = true
	assert.False(t, NameExists("severity", existing, ""), "soft-deleted definitions release their name")
}

func TestAttributeDefinition_Valid(t *testing.T) {
	def := &artifact.AttributeDefinition{
		Name:      "Phase",
		Type:      artifact.AttributeDropdown,
		Options:   []string{"design", "build", "verify"},
		AppliesTo: []string{"requirement", "testcase"},
	}
	require.NoError(t, AttributeDefinition(def, nil))
}

func TestAttributeDefinition_Rules(t *testing.T) {
	existing := []*artifact.AttributeDefinition{textDef("Severity")}
	existing[0].ID = "ATTR-001"

	tests := []struct {
		name  string
		def   *artifact.AttributeDefinition
		field string
	}{
		{
			name:  "empty name",
			def:   textDef("  "),
			field: "name",
		},
		{
			name:  "duplicate name case-insensitive",
			def:   textDef("SEVERITY"),
			field: "name",
		},
		{
			name: "unknown type",
			def: &artifact.AttributeDefinition{
				Name: "Phase",
				Type: artifact.AttributeType("color"),
			},
			field: "type",
		},
		{
			name: "dropdown with one option",
			def: &artifact.AttributeDefinition{
				Name:    "Phase",
				Type:    artifact.AttributeDropdown,
				Options: []string{"only"},
			},
			field: "options",
		},
		{
			name: "dropdown with no options",
			def: &artifact.AttributeDefinition{
				Name: "Phase",
				Type: artifact.AttributeDropdown,
			},
			field: "options",
		},
		{
			name: "options on non-dropdown",
			def: &artifact.AttributeDefinition{
				Name:    "Phase",
				Type:    artifact.AttributeText,
				Options: []string{"a", "b"},
			},
			field: "options",
		},
		{
			name: "option with comma",
			def: &artifact.AttributeDefinition{
				Name:    "Phase",
				Type:    artifact.AttributeDropdown,
				Options: []string{"a,b", "c"},
			},
			field: "options",
		},
		{
			name: "blank option",
			def: &artifact.AttributeDefinition{
				Name:    "Phase",
				Type:    artifact.AttributeDropdown,
				Options: []string{"a", " "},
			},
			field: "options",
		},
		{
			name: "unknown kind in appliesTo",
			def: &artifact.AttributeDefinition{
				Name:      "Phase",
				Type:      artifact.AttributeText,
				AppliesTo: []string{"epic"},
			},
			field: "appliesTo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AttributeDefinition(tt.def, existing)
			require.Error(t, err)
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAttributeDefinition_RenameKeepsOwnName(t *testing.T) {
	existing := []*artifact.AttributeDefinition{textDef("Severity")}
	existing[0].ID = "ATTR-001"

	updated := textDef("severity")
	updated.ID = "ATTR-001"
	require.NoError(t, AttributeDefinition(updated, existing))
}

func TestWorkflow(t *testing.T) {
	valid := func() *artifact.Workflow {
		return &artifact.Workflow{
			Title:       "Sign-off",
			Status:      artifact.WorkflowPending,
			ArtifactIDs: []string{"REQ-001"},
		}
	}

	require.NoError(t, Workflow(valid()))

	w := valid()
	w.Title = ""
	assert.Error(t, Workflow(w))

	w = valid()
	w.ArtifactIDs = nil
	assert.Error(t, Workflow(w))

	w = valid()
	w.ApprovedBy = "carol"
	assert.Error(t, Workflow(w), "pending must not carry a decision")

	w = valid()
	w.Status = artifact.WorkflowApproved
	assert.Error(t, Workflow(w), "approved requires approver and date")

	w = valid()
	w.Status = artifact.WorkflowApproved
	w.ApprovedBy = "carol"
	w.ApprovalDate = 1_700_000_000_000
	assert.NoError(t, Workflow(w))

	w = valid()
	w.Status = artifact.WorkflowStatus("stalled")
	assert.Error(t, Workflow(w))
}
