// errors.go - the unified hron error taxonomy.
//
// Grounded on original_source/rust/hron/src/error.rs's ScheduleError enum
// and display_rich, collapsed into a single Go struct with a Kind
// discriminant in the teacher's own single-struct-per-concern style
// (errors.go's ParseError/FieldError/RangeError/StepError).

package hron

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the four error categories spec.md §4.4 names.
type Kind int

const (
	KindLex Kind = iota
	KindParse
	KindEval
	KindCron
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindParse:
		return "parse"
	case KindEval:
		return "eval"
	case KindCron:
		return "cron"
	default:
		return "unknown"
	}
}

// Span is a byte range within an input string.
type Span struct {
	Start int
	End   int
}

// Error is the single error type returned by every hron operation.
type Error struct {
	Kind       Kind
	Message    string
	Span       Span   // only meaningful for KindLex/KindParse
	Input      string // only meaningful for KindLex/KindParse
	Suggestion string // only meaningful for KindParse; empty means none
	Cause      error  // wrapped sentinel, if any; see ErrUnknownTimezone
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes Cause to errors.Is/errors.As, so callers can match
// ErrUnknownTimezone without string-matching Message.
func (e *Error) Unwrap() error { return e.Cause }

// Rich renders a caret-underlined view of a Lex/Parse error beneath the
// offending span, with an optional suggestion, matching
// error.rs's format_span_error exactly.
func (e *Error) Rich() string {
	if e.Kind != KindLex && e.Kind != KindParse {
		return fmt.Sprintf("error: %s", e.Message)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "error: %s\n", e.Message)
	fmt.Fprintf(&b, "  %s\n", e.Input)
	width := e.Span.End - e.Span.Start
	if width < 1 {
		width = 1
	}
	b.WriteString(strings.Repeat(" ", e.Span.Start+2))
	b.WriteString(strings.Repeat("^", width))
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " try: %q", e.Suggestion)
	}
	return b.String()
}

func lexErrorf(input string, span Span, format string, args ...any) *Error {
	return &Error{Kind: KindLex, Message: fmt.Sprintf(format, args...), Span: span, Input: input}
}

func parseErrorf(input string, span Span, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...), Span: span, Input: input}
}

// parseErrorSuggest builds a parse error with its Suggestion slot filled
// in. Nothing in the parser calls it yet: spec.md §4.4 reserves the
// suggestion slot "for future hint injection" rather than mandating it now,
// so this constructor and Rich's rendering of it exist ahead of any caller
// that would compute a suggestion (e.g. a nearest-keyword lookup).
func parseErrorSuggest(input string, span Span, suggestion string, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...), Span: span, Input: input, Suggestion: suggestion}
}

func evalErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindEval, Message: fmt.Sprintf(format, args...)}
}

func cronErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindCron, Message: fmt.Sprintf(format, args...)}
}

// Sentinel errors, checked with errors.Is against the wrapped cause where applicable.
var (
	// ErrNoMoreOccurrences is returned internally when a search horizon is exhausted; callers see it as Option-style nil, not as an error value, per spec.md §4.5.
	ErrNoMoreOccurrences = errors.New("hron: no more occurrences within search horizon")

	ErrUnknownTimezone = errors.New("hron: unknown timezone")
)
