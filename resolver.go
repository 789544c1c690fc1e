package headparams

import (
	"regexp"
	"strings"
)

// Token keys are ASCII word characters with at most one dotted segment.
// Deeper paths such as %a.b.c only capture "a.b"; the rest stays literal.
var (
	delimitedRe = regexp.MustCompile(`^%(\w+(?:\.\w+)?)%`)
	bareRe      = regexp.MustCompile(`^%(\w+(?:\.\w+)?)`)
)

// pageTitleAlias is the short form of %pageTitle.
const pageTitleAlias = "s"

// Token is one placeholder found in a template.
type Token struct {
	Key       string // key text without '%' delimiters
	Delimited bool   // %key% rather than %key
	Offset    int    // byte offset of the leading '%'
	Len       int    // byte length of the raw token
}

// Raw returns the token as written in the template.
func (t Token) Raw() string {
	if t.Delimited {
		return "%" + t.Key + "%"
	}
	return "%" + t.Key
}

// scanTokens walks s left to right. At each '%' the delimited form is tried
// before the bare one, and scanning resumes after the matched token.
func scanTokens(s string) []Token {
	var out []Token
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], '%')
		if j < 0 {
			break
		}
		i += j
		rest := s[i:]
		if m := delimitedRe.FindStringSubmatch(rest); m != nil {
			out = append(out, Token{Key: m[1], Delimited: true, Offset: i, Len: len(m[0])})
			i += len(m[0])
			continue
		}
		if m := bareRe.FindStringSubmatch(rest); m != nil {
			out = append(out, Token{Key: m[1], Offset: i, Len: len(m[0])})
			i += len(m[0])
			continue
		}
		i++
	}
	return out
}

func isPageTitleKey(key string) bool {
	return key == KeyPageTitle || key == pageTitleAlias
}

// lookupToken returns the replacement for tok and whether the value was found.
func lookupToken(tok Token, params Params) (string, bool) {
	if isPageTitleKey(tok.Key) {
		return params.PageTitle(), true
	}
	v := params.Lookup(tok.Key)
	if v.Truthy() {
		s, _ := v.Str()
		return s, true
	}
	if tok.Delimited {
		return "", false
	}
	return tok.Key, false
}

// Resolve replaces %key% and %key tokens in template with values from params
// and trims the result.
//
// An unresolved %key% becomes the empty string. An unresolved %key is kept as
// "key" so that typos stay visible. Substituted values are not rescanned.
func Resolve(template string, params Params) string {
	toks := scanTokens(template)
	if len(toks) == 0 {
		return trimSpace(template)
	}
	var sb strings.Builder
	sb.Grow(len(template))
	last := 0
	for _, tok := range toks {
		sb.WriteString(template[last:tok.Offset])
		val, _ := lookupToken(tok, params)
		sb.WriteString(val)
		last = tok.Offset + tok.Len
	}
	sb.WriteString(template[last:])
	return trimSpace(sb.String())
}

// Process resolves template and normalizes the separator taken from params.
func Process(template string, params Params) string {
	return NormalizeSeparator(Resolve(template, params), params.Separator())
}
