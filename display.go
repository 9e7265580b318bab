// display.go - canonical pretty-printer: renders a Schedule back into the
// surface syntax it was parsed from. Grounded on
// original_source/rust/hron/src/display.rs's per-variant fmt.Display impls,
// re-expressed as Schedule.String() plus one describe() method per
// ScheduleExpr variant, in the teacher's descriptor.go style of
// building up a []string of parts and joining them.

package hron

import (
	"fmt"
	"strings"
)

// String renders the schedule in canonical hron syntax.
func (s Schedule) String() string {
	var b strings.Builder
	b.WriteString(s.Expr.describe())

	if len(s.Except) > 0 {
		b.WriteString(" except ")
		for i, exc := range s.Except {
			if i > 0 {
				b.WriteString(", ")
			}
			switch v := exc.(type) {
			case ExceptionNamed:
				fmt.Fprintf(&b, "%s %d", v.Month, v.Day)
			case ExceptionISO:
				b.WriteString(civilDateString(v.Date))
			}
		}
	}

	if s.Until != nil {
		switch v := s.Until.(type) {
		case UntilSpecISO:
			fmt.Fprintf(&b, " until %s", civilDateString(v.Date))
		case UntilSpecNamed:
			fmt.Fprintf(&b, " until %s %d", v.Month, v.Day)
		}
	}

	if s.Anchor != nil {
		fmt.Fprintf(&b, " starting %s", civilDateString(*s.Anchor))
	}

	if len(s.During) > 0 {
		b.WriteString(" during ")
		for i, m := range s.During {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.String())
		}
	}

	if s.Timezone != "" {
		fmt.Fprintf(&b, " in %s", s.Timezone)
	}

	return b.String()
}

func civilDateString(d civilDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// describe is implemented by every ScheduleExpr variant; kept unexported
// since it only serves Schedule.String().
func (e IntervalRepeat) describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "every %d %s from %s to %s", e.Interval, e.Unit.Word(e.Interval), e.From, e.To)
	if e.DayFilter != nil {
		fmt.Fprintf(&b, " on %s", describeDayFilter(e.DayFilter))
	}
	return b.String()
}

func (e DayRepeat) describe() string {
	var b strings.Builder
	if _, ok := e.Days.(DayFilterEvery); ok && e.Interval != 1 {
		fmt.Fprintf(&b, "every %d days at ", e.Interval)
	} else {
		fmt.Fprintf(&b, "every %s at ", describeDayFilter(e.Days))
	}
	writeTimeList(&b, e.Times)
	return b.String()
}

func (e WeekRepeat) describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "every %d weeks on ", e.Interval)
	writeDayList(&b, e.Days)
	b.WriteString(" at ")
	writeTimeList(&b, e.Times)
	return b.String()
}

func (e MonthRepeat) describe() string {
	var b strings.Builder
	if e.Interval != 1 {
		fmt.Fprintf(&b, "every %d months on the ", e.Interval)
	} else {
		b.WriteString("every month on the ")
	}
	switch v := e.Target.(type) {
	case MonthTargetDays:
		writeOrdinalDaySpecs(&b, v.Specs)
	case MonthTargetLastDay:
		b.WriteString("last day")
	case MonthTargetLastWeekday:
		b.WriteString("last weekday")
	case MonthTargetNearestWeekday:
		switch v.Direction {
		case NearestNext:
			b.WriteString("next ")
		case NearestPrevious:
			b.WriteString("previous ")
		}
		fmt.Fprintf(&b, "nearest weekday to %d%s", v.Day, ordinalSuffix(v.Day))
	}
	b.WriteString(" at ")
	writeTimeList(&b, e.Times)
	return b.String()
}

func (e OrdinalRepeat) describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s of every", e.Ordinal, e.Day)
	if e.Interval != 1 {
		fmt.Fprintf(&b, " %d", e.Interval)
	}
	b.WriteString(" month at ")
	writeTimeList(&b, e.Times)
	return b.String()
}

func (e SingleDate) describe() string {
	var b strings.Builder
	b.WriteString("on ")
	switch v := e.Date.(type) {
	case DateSpecNamed:
		fmt.Fprintf(&b, "%s %d", v.Month, v.Day)
	case DateSpecISO:
		b.WriteString(civilDateString(v.Date))
	}
	b.WriteString(" at ")
	writeTimeList(&b, e.Times)
	return b.String()
}

func (e YearRepeat) describe() string {
	var b strings.Builder
	if e.Interval != 1 {
		fmt.Fprintf(&b, "every %d years on ", e.Interval)
	} else {
		b.WriteString("every year on ")
	}
	switch v := e.Target.(type) {
	case YearTargetDate:
		fmt.Fprintf(&b, "%s %d", v.Month, v.Day)
	case YearTargetOrdinalWeekday:
		fmt.Fprintf(&b, "the %s %s of %s", v.Ordinal, v.Weekday, v.Month)
	case YearTargetDayOfMonth:
		fmt.Fprintf(&b, "the %d%s of %s", v.Day, ordinalSuffix(v.Day), v.Month)
	case YearTargetLastWeekday:
		fmt.Fprintf(&b, "the last weekday of %s", v.Month)
	}
	b.WriteString(" at ")
	writeTimeList(&b, e.Times)
	return b.String()
}

func describeDayFilter(f DayFilter) string {
	switch v := f.(type) {
	case DayFilterEvery:
		return "day"
	case DayFilterWeekday:
		return "weekday"
	case DayFilterWeekend:
		return "weekend"
	case DayFilterDays:
		var b strings.Builder
		writeDayList(&b, v.Days)
		return b.String()
	default:
		return ""
	}
}

func writeTimeList(b *strings.Builder, times []TimeOfDay) {
	for i, t := range times {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
}

func writeDayList(b *strings.Builder, days []Weekday) {
	for i, d := range days {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
}

func writeOrdinalDaySpecs(b *strings.Builder, specs []DayOfMonthSpec) {
	for i, spec := range specs {
		if i > 0 {
			b.WriteString(", ")
		}
		switch v := spec.(type) {
		case DayOfMonthSingle:
			fmt.Fprintf(b, "%d%s", v.Day, ordinalSuffix(v.Day))
		case DayOfMonthRange:
			fmt.Fprintf(b, "%d%s to %d%s", v.Start, ordinalSuffix(v.Start), v.End, ordinalSuffix(v.End))
		}
	}
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
