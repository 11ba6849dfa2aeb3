package artifact

// AttributeType is the closed set of custom attribute input types.
type AttributeType string

const (
	AttributeText     AttributeType = "text"
	AttributeNumber   AttributeType = "number"
	AttributeDate     AttributeType = "date"
	AttributeDropdown AttributeType = "dropdown"
	AttributeCheckbox AttributeType = "checkbox"
)

// AttributeTypes lists every attribute type.
var AttributeTypes = []AttributeType{
	AttributeText,
	AttributeNumber,
	AttributeDate,
	AttributeDropdown,
	AttributeCheckbox,
}

// AttributeDefinition declares a custom attribute that records of the kinds
// named in AppliesTo may carry.
//
// Invariant (enforced by internal/validate, not by the store): Options is
// present with at least two entries iff Type is AttributeDropdown. Name is
// unique case-insensitively across non-deleted definitions.
type AttributeDefinition struct {
	Meta
	Name         string
	Type         AttributeType
	Description  string
	Required     bool
	DefaultValue string
	Options      []string
	// AppliesTo holds kind names ("requirement", "testcase", ...).
	AppliesTo []string
}
