package hron

import (
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindLex, "lex"},
		{KindParse, "parse"},
		{KindEval, "eval"},
		{KindCron, "cron"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestError_Error_ReturnsMessage(t *testing.T) {
	e := &Error{Kind: KindEval, Message: "something went wrong"}
	if e.Error() != "something went wrong" {
		t.Errorf("Error() = %q, want %q", e.Error(), "something went wrong")
	}
}

func TestError_Rich_NonSpanKindFallsBackToPlain(t *testing.T) {
	e := evalErrorf("unknown timezone %q", "Not/AZone")
	rich := e.Rich()
	if !strings.HasPrefix(rich, "error: ") || strings.Contains(rich, "^") {
		t.Errorf("Rich() for an eval error = %q, want a plain one-line message with no caret span", rich)
	}
}

func TestError_Rich_CaratUnderlinesSpan(t *testing.T) {
	input := "every blorp at 09:00"
	e := parseErrorf(input, Span{6, 11}, "unexpected token %q", "blorp")
	rich := e.Rich()
	lines := strings.Split(rich, "\n")
	if len(lines) != 3 {
		t.Fatalf("Rich() produced %d lines, want 3: %q", len(lines), rich)
	}
	if lines[1] != "  "+input {
		t.Errorf("line 1 = %q, want %q", lines[1], "  "+input)
	}
	wantCarats := strings.Repeat(" ", 6+2) + strings.Repeat("^", 5)
	if !strings.HasPrefix(lines[2], wantCarats) {
		t.Errorf("line 2 = %q, want to start with %q", lines[2], wantCarats)
	}
}

func TestError_Rich_ZeroWidthSpanStillUnderlinesOneCharacter(t *testing.T) {
	e := lexErrorf("every day at", Span{12, 12}, "unexpected end of input")
	rich := e.Rich()
	if !strings.Contains(rich, "^") {
		t.Errorf("Rich() = %q, want at least one caret", rich)
	}
}

func TestError_Rich_AppendsSuggestion(t *testing.T) {
	e := parseErrorSuggest("evey day at 09:00", Span{0, 4}, "every", "unrecognized word %q", "evey")
	rich := e.Rich()
	if !strings.Contains(rich, `try: "every"`) {
		t.Errorf("Rich() = %q, want a suggestion clause", rich)
	}
}

func TestCronErrorf_HasKindCron(t *testing.T) {
	e := cronErrorf("cron field %q: no valid values found", "*/0")
	if e.Kind != KindCron {
		t.Errorf("Kind = %v, want KindCron", e.Kind)
	}
}
