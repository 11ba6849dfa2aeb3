package codec

import "github.com/roach88/reqtrace/internal/artifact"

// Attribute is the codec for attribute definitions.
//
// Options and appliesTo follow the comma-joined list rule; like every list
// field, entries containing commas do not survive and validation rejects
// them upstream.
type Attribute struct{}

func (Attribute) Serialize(a *artifact.AttributeDefinition) string {
	d := &doc{}
	d.set(keyID, a.ID)
	d.setEscaped("name", a.Name)
	d.set("type", string(a.Type))
	d.setBool("required", a.Required)
	d.setEscaped("default", a.DefaultValue)
	d.setList("options", a.Options)
	d.setList("appliesTo", a.AppliesTo)
	putMeta(d, &a.Meta)
	d.body = a.Description
	return d.render()
}

func (Attribute) Deserialize(text string) (*artifact.AttributeDefinition, bool) {
	d, ok := parseDoc(text)
	if !ok {
		return nil, false
	}
	a := &artifact.AttributeDefinition{}
	if !takeMeta(d, &a.Meta) {
		return nil, false
	}
	a.Name = d.getEscaped("name")
	a.Type = artifact.AttributeType(d.getString("type"))
	a.Required = d.getBool("required")
	a.DefaultValue = d.getEscaped("default")
	a.Options = d.getList("options")
	a.AppliesTo = d.getList("appliesTo")
	a.Description = d.body
	return a, true
}
