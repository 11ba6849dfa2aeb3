package artifact

// WorkflowStatus is the workflow approval state machine's closed state set.
// The only legal transitions are pending -> approved and pending -> rejected;
// both are terminal. internal/workflow guards the transitions.
type WorkflowStatus string

const (
	WorkflowPending  WorkflowStatus = "pending"
	WorkflowApproved WorkflowStatus = "approved"
	WorkflowRejected WorkflowStatus = "rejected"
)

// Workflow is an approval request covering one or more artifacts.
//
// Invariant: ApprovedBy and ApprovalDate are set iff Status is approved or
// rejected.
type Workflow struct {
	Meta
	Title       string
	Description string
	CreatedBy   string
	AssignedTo  string
	Status      WorkflowStatus
	// ArtifactIDs is non-empty; each entry references a record of any kind.
	ArtifactIDs []string

	ApprovedBy      string
	ApprovalDate    int64
	ApproverComment string
}
