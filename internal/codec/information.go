package codec

import "github.com/roach88/reqtrace/internal/artifact"

// Information is the codec for the information document kind.
type Information struct{}

func (Information) Serialize(info *artifact.Information) string {
	d := &doc{}
	d.set(keyID, info.ID)
	d.setEscaped("title", info.Title)
	d.setEscaped("category", info.Category)
	putMeta(d, &info.Meta)
	d.body = info.Content
	return d.render()
}

func (Information) Deserialize(text string) (*artifact.Information, bool) {
	d, ok := parseDoc(text)
	if !ok {
		return nil, false
	}
	info := &artifact.Information{}
	if !takeMeta(d, &info.Meta) {
		return nil, false
	}
	info.Title = d.getEscaped("title")
	info.Category = d.getEscaped("category")
	info.Content = d.body
	return info, true
}
