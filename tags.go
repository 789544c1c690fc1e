package headparams

import "maps"

// Kind discriminates head tags.
type Kind string

const (
	KindTitle          Kind = "title"
	KindTitleTemplate  Kind = "titleTemplate"
	KindMeta           Kind = "meta"
	KindTemplateParams Kind = "templateParams"
)

// PropContent is the meta property rewritten by the template params pass.
const PropContent = "content"

// Tag describes one document-head element before serialization.
type Tag struct {
	Kind        Kind
	Props       map[string]string
	TextContent string
	// Params is the payload of a templateParams tag.
	Params Params
}

func (t Tag) clone() Tag {
	t.Props = maps.Clone(t.Props)
	if t.Params != nil {
		t.Params = t.Params.Clone()
	}
	return t
}
