package headparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_Params(t *testing.T) {
	t.Run("should treat only non-empty strings as truthy", func(t *testing.T) {
		assert.False(t, Value{}.Truthy())
		assert.False(t, String("").Truthy())
		assert.False(t, Map(Params{"a": String("b")}).Truthy())
		assert.True(t, String("x").Truthy())
	})

	t.Run("should look up nested paths of any depth", func(t *testing.T) {
		p := Params{"a": Map(Params{"b": Map(Params{"c": String("deep")})})}
		s, ok := p.Lookup("a.b.c").Str()
		require.True(t, ok)
		assert.Equal(t, "deep", s)
		assert.True(t, p.Lookup("a.x.c").IsAbsent())
		assert.True(t, p.Lookup("a.b.c.d").IsAbsent())
		assert.True(t, Params(nil).Lookup("a.b").IsAbsent())
	})

	t.Run("should expose reserved keys", func(t *testing.T) {
		p := Params{KeyPageTitle: String("Home"), KeySeparator: String("|")}
		assert.Equal(t, "Home", p.PageTitle())
		assert.Equal(t, "|", p.Separator())
		assert.Equal(t, "", Params{KeySeparator: Map(nil)}.Separator())
	})

	t.Run("should convert untyped records and drop falsy scalars", func(t *testing.T) {
		p := FromMap(map[string]any{
			"name":  "Acme",
			"count": 3,
			"zero":  0,
			"off":   false,
			"on":    true,
			"ratio": 0.5,
			"none":  nil,
			"site":  map[string]any{"url": "https://acme.test"},
		})
		assert.Equal(t, "Acme", p.Lookup("name").str)
		assert.Equal(t, "3", p.Lookup("count").str)
		assert.Equal(t, "true", p.Lookup("on").str)
		assert.Equal(t, "0.5", p.Lookup("ratio").str)
		assert.Equal(t, "https://acme.test", p.Lookup("site.url").str)
		for _, k := range []string{"zero", "off", "none"} {
			_, present := p[k]
			assert.False(t, present, k)
		}
	})

	t.Run("should clone without sharing the top-level map", func(t *testing.T) {
		p := Params{"a": String("1")}
		c := p.Clone()
		c["b"] = String("2")
		assert.Len(t, p, 1)
		assert.NotNil(t, Params(nil).Clone())
	})

	t.Run("should decode from YAML", func(t *testing.T) {
		var p Params
		src := "separator: '|'\nsite:\n  name: Acme\nyear: 2024\n"
		require.NoError(t, yaml.Unmarshal([]byte(src), &p))
		assert.Equal(t, "|", p.Separator())
		assert.Equal(t, "Acme", Resolve("%site.name", p))
		assert.Equal(t, "2024", Resolve("%year", p))
	})

	t.Run("should reject non-mapping YAML", func(t *testing.T) {
		var p Params
		err := yaml.Unmarshal([]byte("- a\n- b\n"), &p)
		require.Error(t, err)
		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "params", de.Field)
		assert.Equal(t, 1, de.Pos.Line)
	})
}
