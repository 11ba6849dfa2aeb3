package artifact

import "strings"

// RecordExt is the storage file extension, matching the original project
// layout of one markdown-ish text file per artifact.
const RecordExt = ".md"

// Kind identifies a record category. It determines the storage folder a
// record of that category is written to and the prefix of its generated
// identifiers.
type Kind struct {
	// Name is the canonical lowercase kind name ("requirement", "usecase", ...).
	Name string

	// Folder is the storage folder for the kind, relative to the project root.
	Folder string

	// Prefix is the identifier prefix ("REQ" for "REQ-001").
	Prefix string
}

// The closed set of kinds. Folders match the original project layout so an
// existing project directory stays readable.
var (
	KindRequirement = Kind{Name: "requirement", Folder: "requirements", Prefix: "REQ"}
	KindUseCase     = Kind{Name: "usecase", Folder: "usecases", Prefix: "UC"}
	KindTestCase    = Kind{Name: "testcase", Folder: "testcases", Prefix: "TC"}
	KindRisk        = Kind{Name: "risk", Folder: "risks", Prefix: "RISK"}
	KindInformation = Kind{Name: "information", Folder: "information", Prefix: "INFO"}
	KindAttribute   = Kind{Name: "attribute", Folder: "attributes", Prefix: "ATTR"}
	KindWorkflow    = Kind{Name: "workflow", Folder: "workflows", Prefix: "WF"}
	KindLink        = Kind{Name: "link", Folder: "links", Prefix: "LINK"}
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{
	KindRequirement,
	KindUseCase,
	KindTestCase,
	KindRisk,
	KindInformation,
	KindAttribute,
	KindWorkflow,
	KindLink,
}

// RecordPath returns the storage path of a record id of this kind. Every
// layer derives record paths through here, never by hand.
func (k Kind) RecordPath(id string) string {
	return k.Folder + "/" + id + RecordExt
}

// KindNamed returns the kind with the given canonical name.
func KindNamed(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// KindForID infers a record's kind from its identifier prefix
// ("REQ-007" -> requirement). This is the single place prefix inference
// lives; callers must not duplicate the mapping.
func KindForID(id string) (Kind, bool) {
	prefix, _, found := strings.Cut(id, "-")
	if !found {
		return Kind{}, false
	}
	for _, k := range Kinds {
		if k.Prefix == prefix {
			return k, true
		}
	}
	return Kind{}, false
}
