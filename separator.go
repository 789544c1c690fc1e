package headparams

import (
	"strings"
	"unicode/utf8"
)

// isSpace matches the whitespace set that titles are trimmed and separators
// collapsed on: ASCII tab to carriage return, space, NBSP, BOM and the Unicode
// space separators.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

func trimSpace(s string) string { return strings.TrimFunc(s, isSpace) }

// NormalizeSeparator removes a separator left dangling at either end of text
// and collapses doubled separators, which appear when a token between two
// separators resolved to nothing. An empty separator leaves text unchanged.
func NormalizeSeparator(text, separator string) string {
	if separator == "" {
		return text
	}
	text = trimSpace(text)
	if strings.HasSuffix(text, separator) {
		text = trimSpace(text[:len(text)-len(separator)])
	}
	if strings.HasPrefix(text, separator) {
		text = trimSpace(text[len(separator):])
	}
	return collapseSeparator(text, separator)
}

// collapseSeparator replaces each "sep, optional whitespace, sep" run with one
// sep, scanning left to right without overlap.
func collapseSeparator(text, sep string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], sep)
		if j < 0 {
			sb.WriteString(text[i:])
			break
		}
		start := i + j
		sb.WriteString(text[i:start])
		rest := strings.TrimLeftFunc(text[start+len(sep):], isSpace)
		if strings.HasPrefix(rest, sep) {
			sb.WriteString(sep)
			i = len(text) - len(rest) + len(sep)
			continue
		}
		// no match here; a later one may still begin inside this separator
		_, size := utf8.DecodeRuneInString(text[start:])
		sb.WriteString(text[start : start+size])
		i = start + size
	}
	return sb.String()
}
