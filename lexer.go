// lexer.go - byte-indexed scanner producing tokens with source spans.
//
// Grounded on original_source/rust/hron/src/lexer.rs: a single-pass scanner
// with a one-token lookahead mode flag (afterIn) that switches scanning into
// "timezone tail" mode for exactly one token after the `in` keyword.

package hron

import (
	"strings"
)

type tokenKind int

const (
	tokEvery tokenKind = iota
	tokOn
	tokAt
	tokFrom
	tokTo
	tokIn
	tokOf
	tokThe
	tokLast
	tokExcept
	tokUntil
	tokStarting
	tokDuring
	tokYear
	tokYears
	tokNext
	tokPrevious
	tokNearest
	tokDay
	tokDays
	tokWeekday
	tokWeekend
	tokWeek
	tokWeeks
	tokMonth
	tokMonths
	tokMinUnit
	tokHourUnit
	tokWeekdayName
	tokMonthName
	tokOrdinalWord
	tokNumber
	tokOrdinalNumber
	tokTime
	tokIsoDate
	tokComma
	tokTimezone
	tokEOF
)

type token struct {
	Kind  tokenKind
	Span  Span
	Text  string // canonical lowercase source text
	Num   int    // Number, OrdinalNumber
	Hour  int    // Time
	Min   int    // Time
	MName MonthName
	WName Weekday
	Ord   OrdinalPosition
}

var keywordTable = map[string]tokenKind{
	"every": tokEvery, "on": tokOn, "at": tokAt, "from": tokFrom, "to": tokTo,
	"in": tokIn, "of": tokOf, "the": tokThe, "last": tokLast, "except": tokExcept,
	"until": tokUntil, "starting": tokStarting, "during": tokDuring,
	"year": tokYear, "years": tokYears, "next": tokNext, "previous": tokPrevious,
	"nearest": tokNearest, "day": tokDay, "days": tokDays, "weekday": tokWeekday,
	"weekend": tokWeekend, "week": tokWeek, "weeks": tokWeeks,
	"month": tokMonth, "months": tokMonths,
	"min": tokMinUnit, "mins": tokMinUnit, "minute": tokMinUnit, "minutes": tokMinUnit,
	"hour": tokHourUnit, "hours": tokHourUnit, "hr": tokHourUnit, "hrs": tokHourUnit,
}

type lexer struct {
	input   string
	pos     int
	afterIn bool
}

func newLexer(input string) *lexer { return &lexer{input: input} }

func (l *lexer) tokenize() ([]token, *Error) {
	var toks []token
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			toks = append(toks, token{Kind: tokEOF, Span: Span{l.pos, l.pos}})
			return toks, nil
		}

		if l.afterIn {
			tz, span, err := l.lexTimezone()
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{Kind: tokTimezone, Span: span, Text: tz})
			l.afterIn = false
			continue
		}

		start := l.pos
		c := l.input[l.pos]

		switch {
		case c == ',':
			l.pos++
			toks = append(toks, token{Kind: tokComma, Span: Span{start, l.pos}})
		case c >= '0' && c <= '9':
			tok, err := l.lexNumberOrTimeOrDate(start)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case isAlpha(c):
			tok, err := l.lexWord(start)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			if tok.Kind == tokIn {
				l.afterIn = true
			}
		default:
			return nil, lexErrorf(l.input, Span{start, start + 1}, "unexpected character %q", string(c))
		}
	}
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *lexer) lexTimezone() (string, Span, *Error) {
	l.skipWhitespace()
	start := l.pos
	for l.pos < len(l.input) && !isSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		return "", Span{start, start}, lexErrorf(l.input, Span{start, start}, "expected a timezone name after 'in'")
	}
	return l.input[start:l.pos], Span{start, l.pos}, nil
}

// lexNumberOrTimeOrDate scans a digit run and decides, by what follows, whether
// it is an IsoDate (YYYY-MM-DD), a Time (H:MM or HH:MM), an OrdinalNumber
// (digits + st/nd/rd/th), or a plain Number.
func (l *lexer) lexNumberOrTimeOrDate(start int) (token, *Error) {
	digitsStart := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	digits := l.input[digitsStart:l.pos]

	// ISO date: exactly 4 digits followed by -DD-DD.
	if len(digits) == 4 && l.pos+6 <= len(l.input) && l.input[l.pos] == '-' {
		save := l.pos
		if d, ok := l.tryLexIsoDateTail(digits); ok {
			return d, nil
		}
		l.pos = save
	}

	// Time: H or HH followed by :DD
	if len(digits) <= 2 && l.pos < len(l.input) && l.input[l.pos] == ':' {
		save := l.pos
		l.pos++ // consume ':'
		minStart := l.pos
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) && l.pos-minStart < 2 {
			l.pos++
		}
		minDigits := l.input[minStart:l.pos]
		if len(minDigits) == 2 {
			hour := atoiMust(digits)
			minute := atoiMust(minDigits)
			if hour > 23 || minute > 59 {
				return token{}, lexErrorf(l.input, Span{start, l.pos}, "time %q out of range", l.input[start:l.pos])
			}
			return token{Kind: tokTime, Span: Span{start, l.pos}, Hour: hour, Min: minute}, nil
		}
		l.pos = save
	}

	// Ordinal suffix: st/nd/rd/th, case-insensitive.
	if l.pos+2 <= len(l.input) {
		suffix := strings.ToLower(l.input[l.pos : l.pos+2])
		switch suffix {
		case "st", "nd", "rd", "th":
			l.pos += 2
			return token{Kind: tokOrdinalNumber, Span: Span{start, l.pos}, Num: atoiMust(digits)}, nil
		}
	}

	return token{Kind: tokNumber, Span: Span{start, l.pos}, Num: atoiMust(digits)}, nil
}

func (l *lexer) tryLexIsoDateTail(yearDigits string) (token, bool) {
	start := l.pos - len(yearDigits)
	pos := l.pos
	if l.input[pos] != '-' {
		return token{}, false
	}
	pos++
	monthStart := pos
	for pos < len(l.input) && isDigit(l.input[pos]) && pos-monthStart < 2 {
		pos++
	}
	if pos-monthStart != 2 || pos >= len(l.input) || l.input[pos] != '-' {
		return token{}, false
	}
	month := l.input[monthStart:pos]
	pos++
	dayStart := pos
	for pos < len(l.input) && isDigit(l.input[pos]) && pos-dayStart < 2 {
		pos++
	}
	if pos-dayStart != 2 {
		return token{}, false
	}
	day := l.input[dayStart:pos]
	l.pos = pos
	return token{Kind: tokIsoDate, Span: Span{start, pos}, Text: yearDigits + "-" + month + "-" + day}, true
}

func atoiMust(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func (l *lexer) lexWord(start int) (token, *Error) {
	for l.pos < len(l.input) && (isAlpha(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	word := strings.ToLower(l.input[start:l.pos])
	span := Span{start, l.pos}

	if kind, ok := keywordTable[word]; ok {
		return token{Kind: kind, Span: span, Text: word}, nil
	}
	if wd, ok := parseWeekday(word); ok {
		return token{Kind: tokWeekdayName, Span: span, WName: wd, Text: word}, nil
	}
	if mn, ok := parseMonthName(word); ok {
		return token{Kind: tokMonthName, Span: span, MName: mn, Text: word}, nil
	}
	if ord, ok := parseOrdinalWord(word); ok && ord != Last {
		return token{Kind: tokOrdinalWord, Span: span, Ord: ord, Text: word}, nil
	}

	return token{}, lexErrorf(l.input, span, "unrecognized word %q", word)
}
