package codec

import (
	"strconv"
	"strings"

	"github.com/roach88/reqtrace/internal/artifact"
)

// Metadata keys shared by every kind. Kind-specific keys live in the
// per-kind codec files.
const (
	keyID        = "id"
	keyRevision  = "revision"
	keyCreated   = "created"
	keyModified  = "modified"
	keyDeleted   = "deleted"
	keyDeletedAt = "deletedAt"
	keyAttr      = "attr"
)

// putMeta appends the base metadata shared by every record kind. The id is
// written by the caller first so it stays the leading line of every file.
func putMeta(d *doc, m *artifact.Meta) {
	d.set(keyRevision, m.Revision)
	d.setInt(keyCreated, m.DateCreated)
	d.setInt(keyModified, m.LastModified)
	d.setBool(keyDeleted, m.IsDeleted)
	d.setInt(keyDeletedAt, m.DeletedAt)
	for _, av := range m.CustomAttributes {
		d.set(keyAttr, encodeAttr(av))
	}
}

// takeMeta reads the base metadata back. The id is mandatory; everything
// else defaults to its zero value.
func takeMeta(d *doc, m *artifact.Meta) bool {
	id := d.getString(keyID)
	if id == "" {
		return false
	}
	m.ID = id
	m.Revision = d.getString(keyRevision)
	m.DateCreated, _ = d.getInt(keyCreated)
	m.LastModified, _ = d.getInt(keyModified)
	m.IsDeleted = d.getBool(keyDeleted)
	m.DeletedAt, _ = d.getInt(keyDeletedAt)
	for _, line := range d.all(keyAttr) {
		av, ok := decodeAttr(line)
		if !ok {
			return false
		}
		m.SetAttribute(av.AttributeID, av.Value)
	}
	return true
}

// Custom attribute lines tag the value variant explicitly:
//
//	attr: ATTR-002|s|free text (newlines escaped)
//	attr: ATTR-003|n|3.5
//	attr: ATTR-004|b|true
//	attr: ATTR-005|e|
//
// Attribute IDs never contain '|'; the value is the rest of the line.
func encodeAttr(av artifact.AttributeValue) string {
	switch v := av.Value.(type) {
	case artifact.AttrText:
		return av.AttributeID + "|s|" + escape(string(v))
	case artifact.AttrNumber:
		return av.AttributeID + "|n|" + strconv.FormatFloat(float64(v), 'f', -1, 64)
	case artifact.AttrBool:
		return av.AttributeID + "|b|" + strconv.FormatBool(bool(v))
	default:
		return av.AttributeID + "|e|"
	}
}

func decodeAttr(line string) (artifact.AttributeValue, bool) {
	parts := strings.SplitN(line, "|", 3)
	if len(parts) != 3 || parts[0] == "" {
		return artifact.AttributeValue{}, false
	}
	av := artifact.AttributeValue{AttributeID: parts[0]}
	switch parts[1] {
	case "s":
		av.Value = artifact.AttrText(unescape(parts[2]))
	case "n":
		f, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return artifact.AttributeValue{}, false
		}
		av.Value = artifact.AttrNumber(f)
	case "b":
		b, err := strconv.ParseBool(parts[2])
		if err != nil {
			return artifact.AttributeValue{}, false
		}
		av.Value = artifact.AttrBool(b)
	case "e":
		av.Value = artifact.AttrEmpty{}
	default:
		return artifact.AttributeValue{}, false
	}
	return av, true
}
