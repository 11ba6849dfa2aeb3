package codec

import "github.com/roach88/reqtrace/internal/artifact"

// Risk is the codec for the risk kind.
type Risk struct{}

func (Risk) Serialize(r *artifact.Risk) string {
	d := &doc{}
	d.set(keyID, r.ID)
	d.setEscaped("title", r.Title)
	d.set("probability", string(r.Probability))
	d.set("impact", string(r.Impact))
	d.setEscaped("mitigation", r.Mitigation)
	d.set("status", string(r.Status))
	putMeta(d, &r.Meta)
	d.body = r.Description
	return d.render()
}

func (Risk) Deserialize(text string) (*artifact.Risk, bool) {
	d, ok := parseDoc(text)
	if !ok {
		return nil, false
	}
	r := &artifact.Risk{}
	if !takeMeta(d, &r.Meta) {
		return nil, false
	}
	r.Title = d.getEscaped("title")
	r.Probability = artifact.RiskLevel(d.getString("probability"))
	r.Impact = artifact.RiskLevel(d.getString("impact"))
	r.Mitigation = d.getEscaped("mitigation")
	r.Status = artifact.RiskStatus(d.getString("status"))
	r.Description = d.body
	return r, true
}
