package codec

import "github.com/roach88/reqtrace/internal/artifact"

// Requirement is the codec for the requirement kind.
type Requirement struct{}

// Serialize renders a requirement. The description is the body; parent IDs
// are a comma-joined list.
func (Requirement) Serialize(r *artifact.Requirement) string {
	d := &doc{}
	d.set(keyID, r.ID)
	d.setEscaped("title", r.Title)
	d.set("status", string(r.Status))
	d.set("priority", string(r.Priority))
	d.setEscaped("category", r.Category)
	d.setList("parents", r.ParentIDs)
	putMeta(d, &r.Meta)
	d.body = r.Description
	return d.render()
}

// Deserialize parses a requirement, or returns (nil, false) on malformed
// input or a missing id.
func (Requirement) Deserialize(text string) (*artifact.Requirement, bool) {
	d, ok := parseDoc(text)
	if !ok {
		return nil, false
	}
	r := &artifact.Requirement{}
	if !takeMeta(d, &r.Meta) {
		return nil, false
	}
	r.Title = d.getEscaped("title")
	r.Status = artifact.RequirementStatus(d.getString("status"))
	r.Priority = artifact.Priority(d.getString("priority"))
	r.Category = d.getEscaped("category")
	r.ParentIDs = d.getList("parents")
	r.Description = d.body
	return r, true
}
