package hron

import "testing"

// TestDisplay_RoundTripIdempotent exercises spec property 1: for every
// syntactically valid input, re-parsing its canonical display and
// displaying again yields the same text (a fixed point after one pass).
func TestDisplay_RoundTripIdempotent(t *testing.T) {
	inputs := []string{
		"every day at 09:00",
		"every weekday at 09:00",
		"every weekend at 10:00",
		"every monday, wednesday at 08:30",
		"every 3 days at 06:00",
		"every 2 weeks on monday, friday at 07:00",
		"every 45 min from 09:00 to 17:00",
		"every 15 min from 09:00 to 17:00 on weekday",
		"every month on the 1st, 15th at 12:00",
		"every month on the 1st to 5th at 09:00",
		"every month on the last day at 17:00",
		"every month on the last weekday at 17:00",
		"every month on the nearest weekday to 15th at 09:00",
		"first monday of every month at 09:00",
		"last friday of every month at 17:00",
		"on dec 25 at 00:00",
		"on 2026-07-04 at 12:00",
		"every year on jan 1 at 00:00",
		"every year on the third thursday of nov at 12:00",
		"every day at 09:00 except dec 25, jan 1",
		"every day at 09:00 until 2026-02-10",
		"every day at 09:00 starting 2026-01-01",
		"every day at 09:00 during jun, jul, aug",
		"every day at 09:00 in America/New_York",
		"every weekday at 09:00 except dec 25 starting 2026-01-01 during jan, feb in UTC",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", in, err)
			}
			displayed := first.String()

			second, err := Parse(displayed)
			if err != nil {
				t.Fatalf("Parse(display(Parse(%q))) = %q, failed to reparse: %v", in, displayed, err)
			}
			redisplayed := second.String()

			if displayed != redisplayed {
				t.Fatalf("not idempotent: display(parse(%q)) = %q, display(parse(%q)) = %q", in, displayed, displayed, redisplayed)
			}
		})
	}
}

func TestDisplay_CanonicalText(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"every day at 09:00", "every day at 09:00"},
		{"every weekday at 09:00", "every weekday at 09:00"},
		{"every weekend at 09:00", "every weekend at 09:00"},
		{"every month on the 1st to 5th at 09:00", "every month on the 1st to 5th at 09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			sch, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.expr, err)
			}
			if got := sch.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
