package headparams

// Unresolved lists the tokens in template that fall back instead of taking a
// value from params: delimited ones that become empty and bare ones that are
// kept as their key. %pageTitle and %s always resolve and are never listed.
func Unresolved(template string, params Params) []Token {
	var out []Token
	for _, tok := range scanTokens(template) {
		if _, ok := lookupToken(tok, params); !ok {
			out = append(out, tok)
		}
	}
	return out
}
