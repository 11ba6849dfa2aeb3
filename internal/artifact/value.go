package artifact

import "strconv"

// AttrValue is a sealed interface for custom attribute values.
// Only AttrText, AttrNumber, AttrBool, and AttrEmpty implement it.
// The closed set keeps the codec's type tagging total: every stored value
// is one of exactly four variants, never an open "any".
type AttrValue interface {
	attrValue() // Sealed - only these types implement it
}

// AttrText is a string attribute value.
type AttrText string

func (AttrText) attrValue() {}

// AttrNumber is a numeric attribute value.
type AttrNumber float64

func (AttrNumber) attrValue() {}

// AttrBool is a boolean attribute value.
type AttrBool bool

func (AttrBool) attrValue() {}

// AttrEmpty is an explicitly empty attribute value (stored, but carrying
// no data - distinct from the attribute being absent).
type AttrEmpty struct{}

func (AttrEmpty) attrValue() {}

// AttributeValue pairs an attribute definition ID with a value on a record.
type AttributeValue struct {
	AttributeID string
	Value       AttrValue
}

// AttrString renders a value for display. Not the wire encoding; the codec
// owns that.
func AttrString(v AttrValue) string {
	switch val := v.(type) {
	case AttrText:
		return string(val)
	case AttrNumber:
		return strconv.FormatFloat(float64(val), 'f', -1, 64)
	case AttrBool:
		return strconv.FormatBool(bool(val))
	case AttrEmpty, nil:
		return ""
	}
	return ""
}
