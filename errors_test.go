package headparams

import (
	"errors"
	"strings"
	"testing"
)

func Test_LoadHead_Should_Report_Missing_Tag_Kind(t *testing.T) {
	src := "tags:\n  - tag: title\n    textContent: Home\n  - textContent: orphan\n"
	_, err := LoadHead(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected error for tag entry without kind, got nil")
	}

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
	if decErr.Field != "tag" {
		t.Errorf("expected field 'tag', got %q", decErr.Field)
	}
	if decErr.Pos.Line != 4 {
		t.Errorf("expected line 4, got %d", decErr.Pos.Line)
	}
	if !strings.Contains(decErr.Context, "-> 4:") {
		t.Errorf("expected context to point at line 4, got:\n%s", decErr.Context)
	}
}

func Test_LoadHead_Should_Reject_Structured_Text_On_Title(t *testing.T) {
	src := "tags:\n  - tag: title\n    textContent:\n      - a\n      - b\n"
	_, err := LoadHead(strings.NewReader(src))

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
	if decErr.Field != "textContent" {
		t.Errorf("expected field 'textContent', got %q", decErr.Field)
	}
	if !strings.Contains(decErr.Error(), "invalid textContent: text must be a string at line 4") {
		t.Errorf("unexpected message: %s", decErr.Error())
	}
}

func Test_LoadHead_Should_Wrap_Params_Decode_Errors(t *testing.T) {
	src := "tags:\n  - tag: templateParams\n    textContent:\n      site: a\n      site: b\n"
	_, err := LoadHead(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected error for duplicate params key, got nil")
	}
	if !strings.HasPrefix(err.Error(), "decode tag at line 4, column 7:") {
		t.Errorf("expected wrapped error with position, got: %v", err)
	}
	if !strings.Contains(err.Error(), "already defined") {
		t.Errorf("expected duplicate key cause, got: %v", err)
	}
}

func Test_LoadHead_Should_Wrap_Syntax_Errors(t *testing.T) {
	_, err := LoadHead(strings.NewReader("tags: [unterminated\n"))
	if err == nil {
		t.Fatal("expected syntax error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "decode head document:") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}

func Test_ParseError_Message(t *testing.T) {
	e := &ParseError{Pos: Position{Line: 2, Column: 5}, Message: "bad"}
	if got := e.Error(); got != "bad at line 2, column 5" {
		t.Errorf("unexpected message: %q", got)
	}
}

func Test_ExtractContext_Should_Fall_Back_Out_Of_Range(t *testing.T) {
	if got := extractContext("one\ntwo", Position{Line: 9, Column: 1}); got != "one\ntwo" {
		t.Errorf("expected whole content, got %q", got)
	}
	if got := extractContext("", Position{Line: 1, Column: 1}); got != "" {
		t.Errorf("expected empty context, got %q", got)
	}
}
