package codec

import "github.com/roach88/reqtrace/internal/artifact"

// UseCase is the codec for the use case kind.
//
// Preconditions and postconditions may span multiple lines in the record;
// they live in the metadata block with newlines escaped, while the
// description stays raw in the body.
type UseCase struct{}

func (UseCase) Serialize(u *artifact.UseCase) string {
	d := &doc{}
	d.set(keyID, u.ID)
	d.setEscaped("title", u.Title)
	d.setEscaped("actor", u.Actor)
	d.setEscaped("preconditions", u.Preconditions)
	d.setEscaped("postconditions", u.Postconditions)
	d.set("status", string(u.Status))
	d.set("priority", string(u.Priority))
	putMeta(d, &u.Meta)
	d.body = u.Description
	return d.render()
}

func (UseCase) Deserialize(text string) (*artifact.UseCase, bool) {
	d, ok := parseDoc(text)
	if !ok {
		return nil, false
	}
	u := &artifact.UseCase{}
	if !takeMeta(d, &u.Meta) {
		return nil, false
	}
	u.Title = d.getEscaped("title")
	u.Actor = d.getEscaped("actor")
	u.Preconditions = d.getEscaped("preconditions")
	u.Postconditions = d.getEscaped("postconditions")
	u.Status = artifact.RequirementStatus(d.getString("status"))
	u.Priority = artifact.Priority(d.getString("priority"))
	u.Description = d.body
	return u, true
}
