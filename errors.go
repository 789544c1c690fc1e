package headparams

import (
	"fmt"
	"strings"
)

// Position represents a position in a head document.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// ParseError is the base error type for head document errors.
type ParseError struct {
	Pos     Position // Position where the error occurred
	Message string   // Error message
	Context string   // Surrounding content for context
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s at %s\nContext: %s", e.Message, e.Pos, e.Context)
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// DecodeError reports a tag entry that cannot be turned into a Tag.
type DecodeError struct {
	ParseError
	Field string // offending field, e.g. "tag" or "textContent"
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.ParseError.Error())
}

// NewDecodeError creates a new DecodeError with a snippet of source around pos.
func NewDecodeError(pos Position, field, message, source string) *DecodeError {
	return &DecodeError{
		ParseError: ParseError{
			Pos:     pos,
			Message: message,
			Context: extractContext(source, pos),
		},
		Field: field,
	}
}

// extractContext extracts a snippet of text around the error position for context.
// It tries to include a few lines before and after the error.
func extractContext(content string, pos Position) string {
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return content
	}

	startLine := max(0, pos.Line-3)
	endLine := min(len(lines)-1, pos.Line+1)

	var contextBuilder strings.Builder
	for i := startLine; i <= endLine; i++ {
		lineNum := i + 1
		if lineNum == pos.Line {
			contextBuilder.WriteString(fmt.Sprintf("-> %d: %s\n", lineNum, lines[i]))
			if pos.Column <= len(lines[i])+1 {
				contextBuilder.WriteString(strings.Repeat(" ", pos.Column+5) + "^\n")
			}
		} else {
			contextBuilder.WriteString(fmt.Sprintf("   %d: %s\n", lineNum, lines[i]))
		}
	}

	return contextBuilder.String()
}
