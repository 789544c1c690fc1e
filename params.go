package headparams

import (
	"fmt"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reserved parameter keys.
const (
	KeyPageTitle = "pageTitle"
	KeySeparator = "separator"
)

type valueKind uint8

const (
	kindAbsent valueKind = iota
	kindString
	kindMap
)

// Value is a single template parameter: a string, a nested Params record, or
// absent. The zero Value is absent.
type Value struct {
	kind valueKind
	str  string
	sub  Params
}

// String returns a string Value.
func String(s string) Value { return Value{kind: kindString, str: s} }

// Map returns a Value holding a nested record, reachable with dotted tokens.
func Map(p Params) Value { return Value{kind: kindMap, sub: p} }

func (v Value) IsAbsent() bool { return v.kind == kindAbsent }

// Str returns the string payload and whether v holds a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == kindString }

// Params returns the nested record and whether v holds one.
func (v Value) Params() (Params, bool) { return v.sub, v.kind == kindMap }

// Truthy reports whether v can stand in for a token: a non-empty string.
func (v Value) Truthy() bool { return v.kind == kindString && v.str != "" }

// Params is the record found on a templateParams tag.
type Params map[string]Value

// PageTitle returns the pageTitle parameter, or "".
func (p Params) PageTitle() string {
	s, _ := p[KeyPageTitle].Str()
	return s
}

// Separator returns the separator parameter, or "".
func (p Params) Separator() string {
	s, _ := p[KeySeparator].Str()
	return s
}

// Lookup resolves a dotted path such as "site.name". A missing or non-record
// intermediate yields an absent Value.
func (p Params) Lookup(path string) Value {
	if !strings.Contains(path, ".") {
		return p[path]
	}
	cur := p
	segs := strings.Split(path, ".")
	for i, seg := range segs {
		v := cur[seg]
		if i == len(segs)-1 {
			return v
		}
		sub, ok := v.Params()
		if !ok {
			return Value{}
		}
		cur = sub
	}
	return Value{}
}

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}

// FromMap converts an untyped record (JSON or YAML decoded) into Params.
// Strings and nested maps keep their shape; other scalars are formatted,
// except nil, false and numeric zero which become absent.
func FromMap(m map[string]any) Params {
	p := make(Params, len(m))
	for k, raw := range m {
		if v := fromAny(raw); !v.IsAbsent() {
			p[k] = v
		}
	}
	return p
}

func fromAny(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Value{}
	case string:
		return String(t)
	case Value:
		return t
	case Params:
		return Map(t)
	case map[string]any:
		return Map(FromMap(t))
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[fmt.Sprint(k)] = v
		}
		return Map(FromMap(m))
	case bool:
		if !t {
			return Value{}
		}
		return String("true")
	case int:
		return numeric(t == 0, t)
	case int64:
		return numeric(t == 0, t)
	case uint64:
		return numeric(t == 0, t)
	case float64:
		return numeric(t == 0, t)
	default:
		return String(fmt.Sprint(t))
	}
}

func numeric(zero bool, n any) Value {
	if zero {
		return Value{}
	}
	return String(fmt.Sprint(n))
}

// UnmarshalYAML decodes a YAML mapping into Params.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &DecodeError{
			ParseError: ParseError{
				Pos:     Position{Line: node.Line, Column: node.Column},
				Message: "template params must be a mapping",
			},
			Field: "params",
		}
	}
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decode template params: %w", err)
	}
	*p = FromMap(raw)
	return nil
}
