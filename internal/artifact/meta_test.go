package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeta_SetAttribute_LastWriteWins(t *testing.T) {
	m := &Meta{}
	m.SetAttribute("ATTR-001", AttrText("first"))
	m.SetAttribute("ATTR-002", AttrNumber(2))
	m.SetAttribute("ATTR-001", AttrText("second"))

	require.Len(t, m.CustomAttributes, 2)
	assert.Equal(t, "ATTR-001", m.CustomAttributes[0].AttributeID, "first-appearance order preserved")
	assert.Equal(t, AttrText("second"), m.CustomAttributes[0].Value)

	v, ok := m.Attribute("ATTR-002")
	require.True(t, ok)
	assert.Equal(t, AttrNumber(2), v)

	_, ok = m.Attribute("ATTR-404")
	assert.False(t, ok)
}

func TestMeta_MarkDeleted(t *testing.T) {
	m := &Meta{LastModified: 10}
	m.MarkDeleted(99)

	assert.True(t, m.Deleted())
	assert.EqualValues(t, 99, m.DeletedAt)
	assert.EqualValues(t, 99, m.LastModified)
}

func TestAttrString(t *testing.T) {
	cases := []struct {
		value AttrValue
		want  string
	}{
		{AttrText("hello"), "hello"},
		{AttrNumber(3.5), "3.5"},
		{AttrNumber(4), "4"},
		{AttrBool(true), "true"},
		{AttrEmpty{}, ""},
		{nil, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AttrString(tc.value))
	}
}
