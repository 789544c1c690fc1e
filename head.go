package headparams

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type headDoc struct {
	Tags []yaml.Node `yaml:"tags"`
}

type tagDoc struct {
	Tag         string            `yaml:"tag"`
	TextContent yaml.Node         `yaml:"textContent"`
	Props       map[string]string `yaml:"props"`
	Params      *Params           `yaml:"params"`
}

// LoadHead reads a YAML head document:
//
//	tags:
//	  - tag: title
//	    textContent: My Page
//	  - tag: templateParams
//	    params:
//	      separator: "-"
//	  - tag: meta
//	    props: {name: description, content: "%s overview"}
//
// A templateParams tag may also carry its record under textContent.
func LoadHead(r io.Reader) ([]Tag, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read head document: %w", err)
	}
	src := string(data)

	var doc headDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode head document: %w", err)
	}

	tags := make([]Tag, 0, len(doc.Tags))
	for i := range doc.Tags {
		t, err := decodeTag(&doc.Tags[i], src)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func decodeTag(node *yaml.Node, src string) (Tag, error) {
	pos := Position{Line: node.Line, Column: node.Column}
	if node.Kind != yaml.MappingNode {
		return Tag{}, NewDecodeError(pos, "tag", "tag entry must be a mapping", src)
	}
	var td tagDoc
	if err := node.Decode(&td); err != nil {
		return Tag{}, fmt.Errorf("decode tag at %s: %w", pos, err)
	}
	if td.Tag == "" {
		return Tag{}, NewDecodeError(pos, "tag", "missing tag kind", src)
	}

	t := Tag{Kind: Kind(td.Tag), Props: td.Props}
	if td.Params != nil {
		t.Params = *td.Params
	}

	text := &td.TextContent
	textPos := Position{Line: text.Line, Column: text.Column}
	switch {
	case text.IsZero():
		// textContent not given
	case text.Kind == yaml.ScalarNode:
		if text.Tag != "!!null" {
			t.TextContent = text.Value
		}
	case text.Kind == yaml.MappingNode:
		if t.Kind != KindTemplateParams {
			return Tag{}, NewDecodeError(textPos, "textContent", "text must be a string", src)
		}
		var p Params
		if err := text.Decode(&p); err != nil {
			return Tag{}, fmt.Errorf("decode tag at %s: %w", textPos, err)
		}
		if t.Params == nil {
			t.Params = p
		}
	default:
		return Tag{}, NewDecodeError(textPos, "textContent", "text must be a string", src)
	}

	if t.Kind == KindTemplateParams && t.Params == nil {
		t.Params = Params{}
	}
	return t, nil
}
