package artifact

// LinkType is the closed relationship vocabulary for traceability edges.
type LinkType string

const (
	LinkParent      LinkType = "parent"
	LinkChild       LinkType = "child"
	LinkDependsOn   LinkType = "depends_on"
	LinkRequiredBy  LinkType = "required_by"
	LinkSatisfies   LinkType = "satisfies"
	LinkSatisfiedBy LinkType = "satisfied_by"
	LinkVerifies    LinkType = "verifies"
	LinkVerifiedBy  LinkType = "verified_by"
	LinkRequires    LinkType = "requires"
	LinkConstrains  LinkType = "constrains"
	LinkDuplicates  LinkType = "duplicates"
	LinkRelatedTo   LinkType = "related_to"
)

// linkInverses is the total inverse mapping over the vocabulary. Every
// forward type maps to exactly one inverse, symmetric types map to
// themselves, and the mapping is an involution: Inverse(Inverse(t)) == t.
var linkInverses = map[LinkType]LinkType{
	LinkParent:      LinkChild,
	LinkChild:       LinkParent,
	LinkDependsOn:   LinkRequiredBy,
	LinkRequiredBy:  LinkDependsOn,
	LinkSatisfies:   LinkSatisfiedBy,
	LinkSatisfiedBy: LinkSatisfies,
	LinkVerifies:    LinkVerifiedBy,
	LinkVerifiedBy:  LinkVerifies,
	LinkRequires:    LinkConstrains,
	LinkConstrains:  LinkRequires,
	LinkDuplicates:  LinkDuplicates,
	LinkRelatedTo:   LinkRelatedTo,
}

// LinkTypes lists the vocabulary in a stable order.
var LinkTypes = []LinkType{
	LinkParent,
	LinkChild,
	LinkDependsOn,
	LinkRequiredBy,
	LinkSatisfies,
	LinkSatisfiedBy,
	LinkVerifies,
	LinkVerifiedBy,
	LinkRequires,
	LinkConstrains,
	LinkDuplicates,
	LinkRelatedTo,
}

// Inverse returns the relationship label used when presenting an edge from
// the target's point of view.
func Inverse(t LinkType) (LinkType, bool) {
	inv, ok := linkInverses[t]
	return inv, ok
}

// ValidLinkType reports whether t is in the vocabulary.
func ValidLinkType(t LinkType) bool {
	_, ok := linkInverses[t]
	return ok
}

// Link is a directed, typed edge between two record identifiers. Edges are
// stored independently of their endpoints: deleting a record does not delete
// edges that reference it, and SourceID == TargetID is not rejected.
type Link struct {
	Meta
	SourceID string
	TargetID string
	Type     LinkType
	// ProjectIDs scopes visibility: empty means globally visible, non-empty
	// means visible only to the listed projects.
	ProjectIDs []string
}
