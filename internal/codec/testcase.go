package codec

import "github.com/roach88/reqtrace/internal/artifact"

// TestCase is the codec for the test case kind.
type TestCase struct{}

func (TestCase) Serialize(tc *artifact.TestCase) string {
	d := &doc{}
	d.set(keyID, tc.ID)
	d.setEscaped("title", tc.Title)
	d.setEscaped("steps", tc.Steps)
	d.setEscaped("expected", tc.ExpectedResult)
	d.set("status", string(tc.Status))
	d.set("priority", string(tc.Priority))
	d.setList("requirements", tc.RequirementIDs)
	putMeta(d, &tc.Meta)
	d.body = tc.Description
	return d.render()
}

func (TestCase) Deserialize(text string) (*artifact.TestCase, bool) {
	d, ok := parseDoc(text)
	if !ok {
		return nil, false
	}
	tc := &artifact.TestCase{}
	if !takeMeta(d, &tc.Meta) {
		return nil, false
	}
	tc.Title = d.getEscaped("title")
	tc.Steps = d.getEscaped("steps")
	tc.ExpectedResult = d.getEscaped("expected")
	tc.Status = artifact.TestCaseStatus(d.getString("status"))
	tc.Priority = artifact.Priority(d.getString("priority"))
	tc.RequirementIDs = d.getList("requirements")
	tc.Description = d.body
	return tc, true
}
