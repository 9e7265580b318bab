package hron

import "testing"

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"every day", "every day at 09:00"},
		{"every weekday", "every weekday at 09:00"},
		{"every weekend", "every weekend at 10:00"},
		{"named weekdays", "every monday, wednesday at 08:30"},
		{"N days", "every 3 days at 06:00"},
		{"N weeks on", "every 2 weeks on monday, friday at 07:00"},
		{"interval minutes", "every 45 min from 09:00 to 17:00"},
		{"interval minutes with day filter", "every 15 min from 09:00 to 17:00 on weekday"},
		{"interval hours", "every 2 hours from 00:00 to 23:59"},
		{"month ordinal days", "every month on the 1st, 15th at 12:00"},
		{"month day range", "every month on the 1st to 5th at 09:00"},
		{"month last day", "every month on the last day at 17:00"},
		{"month last weekday", "every month on the last weekday at 17:00"},
		{"month nearest weekday", "every month on the nearest weekday to 15th at 09:00"},
		{"month next nearest weekday", "every month on the next nearest weekday to 31st at 09:00"},
		{"ordinal repeat", "first monday of every month at 09:00"},
		{"ordinal repeat last", "last friday of every month at 17:00"},
		{"ordinal repeat interval", "second tuesday of every 2 months at 09:00"},
		{"single date named", "on dec 25 at 00:00"},
		{"single date iso", "on 2026-07-04 at 12:00"},
		{"year repeat date", "every year on jan 1 at 00:00"},
		{"year repeat ordinal weekday", "every year on the third thursday of nov at 12:00"},
		{"year repeat day of month", "every year on the 4th of jul at 12:00"},
		{"year repeat last weekday", "every year on the last weekday of dec at 17:00"},
		{"multiple times", "every day at 09:00, 17:00"},
		{"except clause", "every day at 09:00 except dec 25, jan 1"},
		{"until clause iso", "every day at 09:00 until 2026-02-10"},
		{"until clause named", "every day at 09:00 until dec 31"},
		{"starting clause", "every day at 09:00 starting 2026-01-01"},
		{"during clause", "every day at 09:00 during jun, jul, aug"},
		{"timezone clause", "every day at 09:00 in America/New_York"},
		{"all clauses combined", "every weekday at 09:00 except dec 25 starting 2026-01-01 during jan, feb in UTC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.expr); err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.expr, err)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"garbage", "banana"},
		{"bad time", "every day at 25:00"},
		{"bad clause order", "every day at 09:00 until dec 31 except jan 1"},
		{"duplicate clause", "every day at 09:00 except jan 1 except feb 1"},
		{"invalid day range", "every month on the 10th to 5th at 09:00"},
		{"zero interval", "every 0 days at 09:00"},
		{"dangling every", "every"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.expr); err == nil {
				t.Fatalf("Parse(%q) expected an error, got none", tt.expr)
			}
		})
	}
}

func TestParse_StructuralShape(t *testing.T) {
	sch, err := Parse("every weekday at 09:00 except dec 25, jan 1 in UTC")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	dr, ok := sch.Expr.(DayRepeat)
	if !ok {
		t.Fatalf("Expr type = %T, want DayRepeat", sch.Expr)
	}
	if _, ok := dr.Days.(DayFilterWeekday); !ok {
		t.Fatalf("Days type = %T, want DayFilterWeekday", dr.Days)
	}
	if len(dr.Times) != 1 || dr.Times[0] != (TimeOfDay{9, 0}) {
		t.Fatalf("Times = %+v, want [{9 0}]", dr.Times)
	}
	if len(sch.Except) != 2 {
		t.Fatalf("Except = %+v, want 2 entries", sch.Except)
	}
	if sch.Timezone != "UTC" {
		t.Fatalf("Timezone = %q, want UTC", sch.Timezone)
	}
}

func TestError_Rich_CaratSpan(t *testing.T) {
	_, err := Parse("every day at 25:00")
	if err == nil {
		t.Fatal("expected an error")
	}
	he, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	rich := he.Rich()
	if rich == "" {
		t.Fatal("Rich() returned an empty string")
	}
}
