package hron

import "testing"

func TestLexer_BasicTokens(t *testing.T) {
	toks, err := newLexer("every 2 days at 09:00").tokenize()
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	want := []tokenKind{tokEvery, tokNumber, tokDays, tokAt, tokTime, tokEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
	timeTok := toks[4]
	if timeTok.Hour != 9 || timeTok.Min != 0 {
		t.Errorf("time token = %+v, want hour=9 min=0", timeTok)
	}
}

func TestLexer_OrdinalNumber(t *testing.T) {
	toks, err := newLexer("1st").tokenize()
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if toks[0].Kind != tokOrdinalNumber || toks[0].Num != 1 {
		t.Errorf("token = %+v, want OrdinalNumber{Num:1}", toks[0])
	}
}

func TestLexer_IsoDate(t *testing.T) {
	toks, err := newLexer("2026-12-25").tokenize()
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if toks[0].Kind != tokIsoDate || toks[0].Text != "2026-12-25" {
		t.Errorf("token = %+v, want IsoDate 2026-12-25", toks[0])
	}
}

func TestLexer_FourDigitsWithoutDateTailIsNumber(t *testing.T) {
	// Four digits not followed by a well-formed -DD-DD tail fall back to a
	// plain Number token rather than a malformed IsoDate.
	toks, err := newLexer("2026 at").tokenize()
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if toks[0].Kind != tokNumber || toks[0].Num != 2026 {
		t.Errorf("token = %+v, want Number{2026}", toks[0])
	}
}

func TestLexer_WeekdayAndMonthNames(t *testing.T) {
	toks, err := newLexer("monday jan").tokenize()
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if toks[0].Kind != tokWeekdayName || toks[0].WName != Monday {
		t.Errorf("token 0 = %+v, want WeekdayName Monday", toks[0])
	}
	if toks[1].Kind != tokMonthName || toks[1].MName != Jan {
		t.Errorf("token 1 = %+v, want MonthName Jan", toks[1])
	}
}

func TestLexer_TimezoneModeAfterIn(t *testing.T) {
	toks, err := newLexer("every day at 09:00 in America/New_York").tokenize()
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	last := toks[len(toks)-2] // before EOF
	if last.Kind != tokTimezone || last.Text != "America/New_York" {
		t.Errorf("timezone token = %+v, want Timezone{America/New_York}", last)
	}
}

func TestLexer_TimeOutOfRangeErrors(t *testing.T) {
	if _, err := newLexer("25:00").tokenize(); err == nil {
		t.Error("expected an error for an out-of-range time")
	}
}

func TestLexer_UnexpectedCharacterErrors(t *testing.T) {
	if _, err := newLexer("every day @ 09:00").tokenize(); err == nil {
		t.Error("expected an error for an unrecognized character")
	}
}

func TestLexer_UnrecognizedWordErrors(t *testing.T) {
	if _, err := newLexer("every blorp at 09:00").tokenize(); err == nil {
		t.Error("expected an error for an unrecognized word")
	}
}

func TestLexer_Comma(t *testing.T) {
	toks, err := newLexer("mon, wed").tokenize()
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if toks[1].Kind != tokComma {
		t.Errorf("token 1 = %+v, want Comma", toks[1])
	}
}
