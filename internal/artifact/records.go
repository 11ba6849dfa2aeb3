package artifact

// Priority ranks requirements, use cases, and test cases.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// RequirementStatus is the closed status set for requirements and use cases.
type RequirementStatus string

const (
	StatusDraft       RequirementStatus = "draft"
	StatusReview      RequirementStatus = "review"
	StatusApproved    RequirementStatus = "approved"
	StatusImplemented RequirementStatus = "implemented"
	StatusRejected    RequirementStatus = "rejected"
)

// TestCaseStatus is the closed status set for test cases.
type TestCaseStatus string

const (
	TestDraft   TestCaseStatus = "draft"
	TestReady   TestCaseStatus = "ready"
	TestPassed  TestCaseStatus = "passed"
	TestFailed  TestCaseStatus = "failed"
	TestBlocked TestCaseStatus = "blocked"
)

// RiskLevel grades probability and impact of a risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskStatus is the closed status set for risks.
type RiskStatus string

const (
	RiskOpen      RiskStatus = "open"
	RiskMitigated RiskStatus = "mitigated"
	RiskAccepted  RiskStatus = "accepted"
	RiskClosed    RiskStatus = "closed"
)

// Requirement is a single requirement artifact.
type Requirement struct {
	Meta
	Title       string
	Description string
	Status      RequirementStatus
	Priority    Priority
	Category    string
	// ParentIDs links to parent requirements; ordered, no duplicates enforced.
	ParentIDs []string
}

// UseCase describes an interaction an actor performs against the system.
type UseCase struct {
	Meta
	Title          string
	Description    string
	Actor          string
	Preconditions  string
	Postconditions string
	Status         RequirementStatus
	Priority       Priority
}

// TestCase verifies one or more requirements.
type TestCase struct {
	Meta
	Title          string
	Description    string
	Steps          string
	ExpectedResult string
	Status         TestCaseStatus
	Priority       Priority
	RequirementIDs []string
}

// Risk records a project risk with its mitigation.
type Risk struct {
	Meta
	Title       string
	Description string
	Probability RiskLevel
	Impact      RiskLevel
	Mitigation  string
	Status      RiskStatus
}

// Information is a free-form information document (INFO- prefix).
type Information struct {
	Meta
	Title    string
	Category string
	Content  string
}
