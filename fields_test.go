package hron

import "testing"

func TestCronFieldParser_Wildcard(t *testing.T) {
	f, err := newCronFieldParser(cronFieldMinute).Parse("*")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !f.IsAll() {
		t.Error("Parse(\"*\") should produce a field covering the full range")
	}
	if len(f.All()) != 60 {
		t.Errorf("All() has %d values, want 60", len(f.All()))
	}
}

func TestCronFieldParser_QuestionMarkIsWildcard(t *testing.T) {
	f, err := newCronFieldParser(cronFieldDayOfMonth).Parse("?")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !f.IsAll() {
		t.Error("Parse(\"?\") should produce a field covering the full range")
	}
}

func TestCronFieldParser_List(t *testing.T) {
	f, err := newCronFieldParser(cronFieldDayOfWeek).Parse("1,3,5")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []int{1, 3, 5}
	got := f.All()
	if len(got) != len(want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCronFieldParser_Range(t *testing.T) {
	f, err := newCronFieldParser(cronFieldDayOfMonth).Parse("1-5")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := f.All(); len(got) != 5 || got[0] != 1 || got[4] != 5 {
		t.Errorf("All() = %v, want 1..5", got)
	}
}

func TestCronFieldParser_RangeStartAfterEndErrors(t *testing.T) {
	if _, err := newCronFieldParser(cronFieldDayOfMonth).Parse("5-1"); err == nil {
		t.Error("expected an error for a descending range")
	}
}

func TestCronFieldParser_Step(t *testing.T) {
	f, err := newCronFieldParser(cronFieldMinute).Parse("*/15")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []int{0, 15, 30, 45}
	got := f.All()
	if len(got) != len(want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCronFieldParser_SteppedRange(t *testing.T) {
	f, err := newCronFieldParser(cronFieldHour).Parse("0-10/2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []int{0, 2, 4, 6, 8, 10}
	got := f.All()
	if len(got) != len(want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
}

func TestCronFieldParser_NamedMonthAndWeekday(t *testing.T) {
	f, err := newCronFieldParser(cronFieldMonth).Parse("jan,dec")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := f.All(); len(got) != 2 || got[0] != 1 || got[1] != 12 {
		t.Errorf("All() = %v, want [1 12]", got)
	}

	dow, err := newCronFieldParser(cronFieldDayOfWeek).Parse("MON-FRI")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := dow.All(); len(got) != 5 || got[0] != 1 || got[4] != 5 {
		t.Errorf("All() = %v, want 1..5", got)
	}
}

func TestCronFieldParser_OutOfRangeErrors(t *testing.T) {
	if _, err := newCronFieldParser(cronFieldHour).Parse("24"); err == nil {
		t.Error("expected an error for an out-of-range hour")
	}
}

func TestCronFieldParser_EmptyErrors(t *testing.T) {
	if _, err := newCronFieldParser(cronFieldMinute).Parse(""); err == nil {
		t.Error("expected an error for an empty field")
	}
}

func TestCronFieldParser_ZeroStepErrors(t *testing.T) {
	if _, err := newCronFieldParser(cronFieldMinute).Parse("*/0"); err == nil {
		t.Error("expected an error for a zero step")
	}
}
