package artifact

// Meta is the metadata every record kind embeds.
//
// ID is immutable once assigned by the allocator. Timestamps are epoch
// milliseconds. Revision is a caller-maintained tag; the engine stores it
// verbatim and never computes it.
type Meta struct {
	ID           string
	Revision     string
	DateCreated  int64
	LastModified int64
	IsDeleted    bool
	DeletedAt    int64

	// CustomAttributes is ordered; at most one entry per AttributeID
	// (SetAttribute keeps last write wins).
	CustomAttributes []AttributeValue
}

// Record is implemented by every artifact kind via an embedded *Meta.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	CreatedAt() int64
	SetCreatedAt(ms int64)
	ModifiedAt() int64
	Touch(ms int64)
	Deleted() bool
	MarkDeleted(ms int64)
}

// RecordID returns the record's identifier.
func (m *Meta) RecordID() string { return m.ID }

// SetRecordID assigns the identifier. Called once by the store at creation;
// IDs are immutable afterwards.
func (m *Meta) SetRecordID(id string) { m.ID = id }

// CreatedAt returns the creation timestamp in epoch milliseconds.
func (m *Meta) CreatedAt() int64 { return m.DateCreated }

// SetCreatedAt stamps the creation timestamp.
func (m *Meta) SetCreatedAt(ms int64) { m.DateCreated = ms }

// ModifiedAt returns the last-modified timestamp in epoch milliseconds.
func (m *Meta) ModifiedAt() int64 { return m.LastModified }

// Touch bumps the last-modified timestamp.
func (m *Meta) Touch(ms int64) { m.LastModified = ms }

// Deleted reports whether the record is soft-deleted.
func (m *Meta) Deleted() bool { return m.IsDeleted }

// MarkDeleted flips the soft-delete markers and bumps LastModified.
// Reversible by clearing IsDeleted; the storage unit stays in place.
func (m *Meta) MarkDeleted(ms int64) {
	m.IsDeleted = true
	m.DeletedAt = ms
	m.LastModified = ms
}

// SetAttribute sets a custom attribute value, replacing any existing entry
// for the same attribute ID (last write wins). Order of first appearance is
// preserved.
func (m *Meta) SetAttribute(attributeID string, v AttrValue) {
	for i := range m.CustomAttributes {
		if m.CustomAttributes[i].AttributeID == attributeID {
			m.CustomAttributes[i].Value = v
			return
		}
	}
	m.CustomAttributes = append(m.CustomAttributes, AttributeValue{AttributeID: attributeID, Value: v})
}

// Attribute returns the value stored for the attribute ID, if any.
func (m *Meta) Attribute(attributeID string) (AttrValue, bool) {
	for _, av := range m.CustomAttributes {
		if av.AttributeID == attributeID {
			return av.Value, true
		}
	}
	return nil, false
}
