package codec

import "github.com/roach88/reqtrace/internal/artifact"

// Workflow is the codec for workflow approval records.
type Workflow struct{}

func (Workflow) Serialize(w *artifact.Workflow) string {
	d := &doc{}
	d.set(keyID, w.ID)
	d.setEscaped("title", w.Title)
	d.setEscaped("createdBy", w.CreatedBy)
	d.setEscaped("assignedTo", w.AssignedTo)
	d.set("status", string(w.Status))
	d.setList("artifacts", w.ArtifactIDs)
	d.setEscaped("approvedBy", w.ApprovedBy)
	d.setInt("approvalDate", w.ApprovalDate)
	d.setEscaped("approverComment", w.ApproverComment)
	putMeta(d, &w.Meta)
	d.body = w.Description
	return d.render()
}

func (Workflow) Deserialize(text string) (*artifact.Workflow, bool) {
	d, ok := parseDoc(text)
	if !ok {
		return nil, false
	}
	w := &artifact.Workflow{}
	if !takeMeta(d, &w.Meta) {
		return nil, false
	}
	w.Title = d.getEscaped("title")
	w.CreatedBy = d.getEscaped("createdBy")
	w.AssignedTo = d.getEscaped("assignedTo")
	w.Status = artifact.WorkflowStatus(d.getString("status"))
	w.ArtifactIDs = d.getList("artifacts")
	w.ApprovedBy = d.getEscaped("approvedBy")
	w.ApprovalDate, _ = d.getInt("approvalDate")
	w.ApproverComment = d.getEscaped("approverComment")
	w.Description = d.body
	return w, true
}
