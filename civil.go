// civil.go - pure civil-date (year/month/day, no time-of-day or zone) arithmetic.
//
// Go's standard library folds civil dates, wall-clock time, and timezone
// into one time.Time. The evaluator needs to do day/month/year arithmetic
// that is deliberately zone-naive (the same arithmetic the teacher's
// Scheduler does at midnight in its own *time.Location in scheduler.go's
// lastDayOfMonth/lastWeekdayOfMonth/nthWeekdayOfMonth helpers) before ever
// materializing a zoned instant, so civilDate keeps that step explicit.

package hron

import "time"

// epochMonday is the Monday 1970-01-05 anchor used for unaligned WeekRepeat schedules.
var epochMonday = civilDate{1970, 1, 5}

// epochDay is the 1970-01-01 anchor used for unaligned DayRepeat/MonthRepeat/YearRepeat schedules.
var epochDay = civilDate{1970, 1, 1}

type civilDate struct {
	Year  int
	Month int // 1..12
	Day   int // 1..31
}

func newCivilDate(year, month, day int) (civilDate, bool) {
	if month < 1 || month > 12 {
		return civilDate{}, false
	}
	if day < 1 || day > daysInMonth(year, month) {
		return civilDate{}, false
	}
	return civilDate{year, month, day}, true
}

// toTime anchors the civil date to midnight UTC purely for weekday arithmetic.
func (d civilDate) toTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func fromTime(t time.Time) civilDate {
	return civilDate{t.Year(), int(t.Month()), t.Day()}
}

func (d civilDate) Weekday() Weekday {
	switch d.toTime().Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

func (d civilDate) AddDays(n int) civilDate { return fromTime(d.toTime().AddDate(0, 0, n)) }

func (d civilDate) Tomorrow() civilDate  { return d.AddDays(1) }
func (d civilDate) Yesterday() civilDate { return d.AddDays(-1) }

func (d civilDate) Before(o civilDate) bool {
	return d.toTime().Before(o.toTime())
}

func (d civilDate) After(o civilDate) bool {
	return d.toTime().After(o.toTime())
}

func (d civilDate) Equal(o civilDate) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

// lastDayOfMonth returns the last civil day of the given year/month.
func lastDayOfMonth(year, month int) civilDate {
	return civilDate{year, month, daysInMonth(year, month)}
}

// lastWeekdayOfMonth returns the last Mon-Fri of the month.
func lastWeekdayOfMonth(year, month int) civilDate {
	d := lastDayOfMonth(year, month)
	for d.Weekday() == Saturday || d.Weekday() == Sunday {
		d = d.Yesterday()
	}
	return d
}

// nthWeekdayOfMonth returns the nth (1-indexed) occurrence of weekday wd in
// the given month, or false if it does not exist (e.g. a fifth occurrence).
func nthWeekdayOfMonth(year, month int, wd Weekday, n int) (civilDate, bool) {
	d := civilDate{year, month, 1}
	for d.Weekday() != wd {
		d = d.Tomorrow()
	}
	d = d.AddDays(7 * (n - 1))
	if d.Month != month {
		return civilDate{}, false
	}
	return d, true
}

// lastWeekdayOccurrence returns the last occurrence of weekday wd in the given month.
func lastWeekdayOccurrence(year, month int, wd Weekday) civilDate {
	d := lastDayOfMonth(year, month)
	for d.Weekday() != wd {
		d = d.Yesterday()
	}
	return d
}

// monthsBetween returns the signed month-of-era delta (12*Δyear + Δmonth) from a to b.
func monthsBetween(a, b civilDate) int {
	return (b.Year-a.Year)*12 + (b.Month - a.Month)
}

// daysBetween returns the signed day delta from a to b.
func daysBetween(a, b civilDate) int {
	return int(b.toTime().Sub(a.toTime()).Hours() / 24)
}

// addMonths advances a year/month pair by n months (n may be negative) and
// returns the resulting year and month. It carries no day, so nothing is
// clamped; MonthTarget candidate generation clips days explicitly per variant.
func addMonths(year, month, n int) (int, int) {
	total := (year*12 + (month - 1)) + n
	y := total / 12
	m := total%12 + 1
	if m <= 0 {
		m += 12
		y--
	}
	return y, m
}
