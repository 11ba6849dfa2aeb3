package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInverse_Total verifies every relationship type has exactly one
// inverse and that applying the inverse twice comes back to the original.
func TestInverse_Total(t *testing.T) {
	for _, linkType := range LinkTypes {
		inverse, ok := Inverse(linkType)
		require.True(t, ok, "no inverse for %s", linkType)

		back, ok := Inverse(inverse)
		require.True(t, ok, "no inverse for %s (inverse of %s)", inverse, linkType)
		assert.Equal(t, linkType, back, "inverse is not an involution for %s", linkType)
	}
}

func TestInverse_SymmetricTypes(t *testing.T) {
	for _, symmetric := range []LinkType{LinkDuplicates, LinkRelatedTo} {
		inverse, ok := Inverse(symmetric)
		require.True(t, ok)
		assert.Equal(t, symmetric, inverse)
	}
}

func TestInverse_Pairs(t *testing.T) {
	cases := map[LinkType]LinkType{
		LinkParent:    LinkChild,
		LinkDependsOn: LinkRequiredBy,
		LinkSatisfies: LinkSatisfiedBy,
		LinkVerifies:  LinkVerifiedBy,
		LinkRequires:  LinkConstrains,
	}
	for forward, want := range cases {
		inverse, ok := Inverse(forward)
		require.True(t, ok)
		assert.Equal(t, want, inverse)
	}
}

func TestInverse_Unknown(t *testing.T) {
	_, ok := Inverse("blocks")
	assert.False(t, ok)
	assert.False(t, ValidLinkType("blocks"))
}
