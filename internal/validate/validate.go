// Package validate holds the business-rule checks callers run before
// touching a store.
//
// The stores themselves assume pre-validated input and only check
// structural shape; everything here is application-level validation, raised
// by the calling layer per the error taxonomy. A rule failing yields an
// *Error naming the offending field so the UI can render something useful.
package validate

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/roach88/reqtrace/internal/artifact"
)

// Error is a single failed business rule.
type Error struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func fail(field, reason string) *Error {
	return &Error{Field: field, Reason: reason}
}

// folder performs Unicode case folding for the case-insensitive name
// comparisons below.
var folder = cases.Fold()

// EqualNames reports whether two attribute names collide, case-insensitively.
func EqualNames(a, b string) bool {
	return folder.String(strings.TrimSpace(a)) == folder.String(strings.TrimSpace(b))
}

// NameExists reports whether name collides with an existing, non-deleted
// attribute definition other than excludeID. Soft-deleted definitions do
// not reserve their name.
func NameExists(name string, existing []*artifact.AttributeDefinition, excludeID string) bool {
	for _, def := range existing {
		if def.ID == excludeID || def.IsDeleted {
			continue
		}
		if EqualNames(def.Name, name) {
			return true
		}
	}
	return false
}

// AttributeDefinition checks a definition against the full rule set:
// non-empty unique name, known type, and the dropdown/options invariant
// (options present with at least two entries iff the type is dropdown).
// Options must survive the comma-joined list encoding, so entries with
// commas are rejected here rather than silently mangled on disk.
func AttributeDefinition(def *artifact.AttributeDefinition, existing []*artifact.AttributeDefinition) error {
	if strings.TrimSpace(def.Name) == "" {
		return fail("name", "must not be empty")
	}
	if NameExists(def.Name, existing, def.ID) {
		return fail("name", fmt.Sprintf("%q is already in use", def.Name))
	}
	if !validAttributeType(def.Type) {
		return fail("type", fmt.Sprintf("unknown attribute type %q", def.Type))
	}
	if def.Type == artifact.AttributeDropdown {
		if len(def.Options) < 2 {
			return fail("options", "dropdown requires at least two options")
		}
	} else if len(def.Options) > 0 {
		return fail("options", fmt.Sprintf("options are only valid for dropdown, not %s", def.Type))
	}
	for _, opt := range def.Options {
		if strings.TrimSpace(opt) == "" {
			return fail("options", "options must not be empty")
		}
		if strings.Contains(opt, ",") {
			return fail("options", fmt.Sprintf("option %q must not contain a comma", opt))
		}
	}
	for _, kindName := range def.AppliesTo {
		if _, ok := artifact.KindNamed(kindName); !ok {
			return fail("appliesTo", fmt.Sprintf("unknown artifact kind %q", kindName))
		}
	}
	return nil
}

func validAttributeType(t artifact.AttributeType) bool {
	for _, known := range artifact.AttributeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Workflow checks a workflow record's shape: a non-empty artifact list, a
// known status, and the approval invariant (approvedBy and approvalDate set
// iff the status is approved or rejected).
func Workflow(w *artifact.Workflow) error {
	if strings.TrimSpace(w.Title) == "" {
		return fail("title", "must not be empty")
	}
	if len(w.ArtifactIDs) == 0 {
		return fail("artifactIds", "must reference at least one artifact")
	}
	switch w.Status {
	case artifact.WorkflowPending:
		if w.ApprovedBy != "" || w.ApprovalDate != 0 {
			return fail("approvedBy", "must be empty while pending")
		}
	case artifact.WorkflowApproved, artifact.WorkflowRejected:
		if w.ApprovedBy == "" || w.ApprovalDate == 0 {
			return fail("approvedBy", fmt.Sprintf("required for status %s", w.Status))
		}
	default:
		return fail("status", fmt.Sprintf("unknown workflow status %q", w.Status))
	}
	return nil
}
