package codec

import "github.com/roach88/reqtrace/internal/artifact"

// Link is the codec for traceability edges. Links carry no body.
type Link struct{}

func (Link) Serialize(l *artifact.Link) string {
	d := &doc{}
	d.set(keyID, l.ID)
	d.set("source", l.SourceID)
	d.set("target", l.TargetID)
	d.set("type", string(l.Type))
	d.setList("projects", l.ProjectIDs)
	putMeta(d, &l.Meta)
	return d.render()
}

// Deserialize parses a link. Source, target, and type are mandatory on top
// of the id; an edge missing any of them is malformed.
func (Link) Deserialize(text string) (*artifact.Link, bool) {
	d, ok := parseDoc(text)
	if !ok {
		return nil, false
	}
	l := &artifact.Link{}
	if !takeMeta(d, &l.Meta) {
		return nil, false
	}
	l.SourceID = d.getString("source")
	l.TargetID = d.getString("target")
	l.Type = artifact.LinkType(d.getString("type"))
	l.ProjectIDs = d.getList("projects")
	if l.SourceID == "" || l.TargetID == "" || l.Type == "" {
		return nil, false
	}
	return l, true
}
