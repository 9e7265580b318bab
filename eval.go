// eval.go - the evaluator: next/previous/matches/iteration over a Schedule.
//
// Grounded on original_source/rust/hron/src/eval.rs's next_expr/matches
// dispatch and its documented per-variant search horizons, re-expressed in
// the teacher's scheduler.go style (a *time.Location-bearing search loop
// with a bounded iteration count rather than Rust's Option-returning
// recursion). Every bound below (8 days, 400 days, 54 aligned weeks, 24
// months, 8 years) is the one eval.rs documents for that variant; interval
// generalizes the bound by the interval's multiplier exactly as eval.rs's
// own interval>1 branches do.

package hron

import (
	"errors"
	"fmt"
	"time"
)

func resolveLocation(tz string) (*time.Location, *Error) {
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, &Error{
			Kind:    KindEval,
			Message: fmt.Sprintf("unknown timezone %q", tz),
			Cause:   ErrUnknownTimezone,
		}
	}
	return loc, nil
}

func zonedAt(date civilDate, tod TimeOfDay, loc *time.Location) time.Time {
	t := time.Date(date.Year, time.Month(date.Month), date.Day, tod.Hour, tod.Minute, 0, 0, loc)
	// time.Date can resolve a wall time inside a DST gap to an instant
	// before the gap; such times are moved forward past the gap instead.
	want := time.Date(date.Year, time.Month(date.Month), date.Day, tod.Hour, tod.Minute, 0, 0, time.UTC)
	got := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	if got.Before(want) {
		t = t.Add(want.Sub(got))
	}
	return t
}

// timeListMatches reports whether instant t (already materialized as zdt in
// loc) matches one of times on the given civil date, including the DST-gap
// escape: when t's wall-clock minute doesn't land on any candidate (because
// the civil clock skipped over it during a spring-forward transition),
// re-materialize each candidate on date and accept t if it collapses onto
// the same instant anyway.
func timeListMatches(date civilDate, times []TimeOfDay, loc *time.Location, t time.Time, zdt time.Time) bool {
	for _, tod := range times {
		if zdt.Hour() == tod.Hour && zdt.Minute() == tod.Minute {
			return true
		}
	}
	for _, tod := range times {
		if zonedAt(date, tod, loc).Equal(t) {
			return true
		}
	}
	return false
}

func isExcepted(date civilDate, excs []Exception) bool {
	for _, e := range excs {
		switch v := e.(type) {
		case ExceptionISO:
			if date.Equal(v.Date) {
				return true
			}
		case ExceptionNamed:
			if date.Month == int(v.Month) && date.Day == v.Day {
				return true
			}
		}
	}
	return false
}

func matchesDuring(date civilDate, during []MonthName) bool {
	if len(during) == 0 {
		return true
	}
	for _, m := range during {
		if int(m) == date.Month {
			return true
		}
	}
	return false
}

// resolveUntil turns an until clause into an inclusive civil-date bound for
// the given evaluation year; named until dates bind to the year of the
// candidate being tested, so the caller passes the candidate's year.
func resolveUntil(u UntilSpec, year int) civilDate {
	switch v := u.(type) {
	case UntilSpecISO:
		return v.Date
	case UntilSpecNamed:
		return civilDate{year, int(v.Month), v.Day}
	default:
		return civilDate{9999, 12, 31}
	}
}

func afterUntil(date civilDate, u UntilSpec) bool {
	if u == nil {
		return false
	}
	bound := resolveUntil(u, date.Year)
	return date.After(bound)
}

// earliestFutureAtTimes returns the earliest instant on date, among times,
// that is strictly after now (after is exclusive: the current minute itself
// does not requalify).
func earliestFutureAtTimes(date civilDate, times []TimeOfDay, loc *time.Location, after time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, tod := range times {
		cand := zonedAt(date, tod, loc)
		if cand.After(after) && (!found || cand.Before(best)) {
			best = cand
			found = true
		}
	}
	return best, found
}

// latestPastAtTimes returns the latest instant on date, among times, that is
// strictly before before.
func latestPastAtTimes(date civilDate, times []TimeOfDay, loc *time.Location, before time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, tod := range times {
		cand := zonedAt(date, tod, loc)
		if cand.Before(before) && (!found || cand.After(best)) {
			best = cand
			found = true
		}
	}
	return best, found
}

// alignedToDayInterval reports whether date is a whole multiple of interval
// days away from anchor (interval==1 always aligns).
func alignedToDayInterval(date civilDate, anchor civilDate, interval int) bool {
	if interval <= 1 {
		return true
	}
	delta := daysBetween(anchor, date)
	return ((delta % interval) + interval) % interval == 0
}

func mondayOf(d civilDate) civilDate {
	return d.AddDays(-(d.Weekday().ISONumber() - 1))
}

func alignedToWeekInterval(date civilDate, anchor civilDate, interval int) bool {
	if interval <= 1 {
		return true
	}
	weeks := daysBetween(mondayOf(anchor), mondayOf(date)) / 7
	return ((weeks % interval) + interval) % interval == 0
}

func alignedToMonthInterval(year, month int, anchor civilDate, interval int) bool {
	if interval <= 1 {
		return true
	}
	delta := monthsBetween(anchor, civilDate{year, month, 1})
	return ((delta % interval) + interval) % interval == 0
}

func alignedToYearInterval(year int, anchor civilDate, interval int) bool {
	if interval <= 1 {
		return true
	}
	delta := year - anchor.Year
	return ((delta % interval) + interval) % interval == 0
}

func anchorOrDefault(s Schedule, def civilDate) civilDate {
	if s.Anchor != nil {
		return *s.Anchor
	}
	return def
}

// nearestWeekdayCandidate resolves a single month's NearestWeekday target,
// per the cron-W-compatible Direction rules. It reports false when v.Day
// does not exist in the month (e.g. day 31 in February).
func nearestWeekdayCandidate(year, month int, v MonthTargetNearestWeekday) (civilDate, bool) {
	last := lastDayOfMonth(year, month)
	if v.Day > last.Day {
		return civilDate{}, false
	}
	d, ok := newCivilDate(year, month, v.Day)
	if !ok {
		return civilDate{}, false
	}
	wd := d.Weekday()
	if wd != Saturday && wd != Sunday {
		return d, true
	}
	switch v.Direction {
	case NearestDirectionNone:
		if wd == Saturday {
			if v.Day == 1 {
				return d.AddDays(2), true
			}
			return d.Yesterday(), true
		}
		if v.Day == last.Day {
			return d.AddDays(-2), true
		}
		return d.Tomorrow(), true
	case NearestNext:
		if wd == Saturday {
			return d.AddDays(2), true
		}
		return d.AddDays(1), true
	case NearestPrevious:
		if wd == Saturday {
			return d.AddDays(-1), true
		}
		return d.AddDays(-2), true
	default:
		return civilDate{}, false
	}
}

// matchesNearestWeekday reports whether date is the NearestWeekday
// candidate produced by v for its own month or either neighboring month
// (direction shifts can only cross by one or two days, so only the
// adjacent months can ever produce a result landing on date).
func matchesNearestWeekday(date civilDate, v MonthTargetNearestWeekday) bool {
	for _, delta := range [...]int{0, -1, 1} {
		y, m := addMonths(date.Year, date.Month, delta)
		if d, ok := nearestWeekdayCandidate(y, m, v); ok && date.Equal(d) {
			return true
		}
	}
	return false
}

// monthTargetDatesIn expands target to the civil dates it selects within
// year/month. Interval alignment is checked by the callers, not here.
func monthTargetDatesIn(year, month int, target MonthTarget) []civilDate {
	switch v := target.(type) {
	case MonthTargetDays:
		last := daysInMonth(year, month)
		var out []civilDate
		for _, day := range v.expandDays() {
			if day >= 1 && day <= last {
				out = append(out, civilDate{year, month, day})
			}
		}
		return out
	case MonthTargetLastDay:
		return []civilDate{lastDayOfMonth(year, month)}
	case MonthTargetLastWeekday:
		return []civilDate{lastWeekdayOfMonth(year, month)}
	case MonthTargetNearestWeekday:
		if d, ok := nearestWeekdayCandidate(year, month, v); ok {
			return []civilDate{d}
		}
		return nil
	default:
		return nil
	}
}

func matchesMonthTarget(date civilDate, target MonthTarget) bool {
	switch v := target.(type) {
	case MonthTargetDays:
		for _, day := range v.expandDays() {
			if day == date.Day {
				return true
			}
		}
		return false
	case MonthTargetLastDay:
		return date.Equal(lastDayOfMonth(date.Year, date.Month))
	case MonthTargetLastWeekday:
		return date.Equal(lastWeekdayOfMonth(date.Year, date.Month))
	case MonthTargetNearestWeekday:
		return matchesNearestWeekday(date, v)
	default:
		return false
	}
}

func yearTargetDateIn(year int, target YearTarget) (civilDate, bool) {
	switch v := target.(type) {
	case YearTargetDate:
		return newCivilDate(year, int(v.Month), v.Day)
	case YearTargetDayOfMonth:
		return newCivilDate(year, int(v.Month), v.Day)
	case YearTargetLastWeekday:
		return lastWeekdayOfMonth(year, int(v.Month)), true
	case YearTargetOrdinalWeekday:
		if v.Ordinal == Last {
			return lastWeekdayOccurrence(year, int(v.Month), v.Weekday), true
		}
		return nthWeekdayOfMonth(year, int(v.Month), v.Weekday, v.Ordinal.N())
	default:
		return civilDate{}, false
	}
}

// evalCtx bundles the fields a single search pass needs repeatedly.
type evalCtx struct {
	loc  *time.Location
	expr ScheduleExpr
	sch  Schedule
}

func newEvalCtx(s Schedule) (evalCtx, *Error) {
	loc, err := resolveLocation(s.Timezone)
	if err != nil {
		return evalCtx{}, err
	}
	return evalCtx{loc: loc, expr: s.Expr, sch: s}, nil
}

func (c evalCtx) qualifies(date civilDate) bool {
	return matchesDuring(date, c.sch.During) && !isExcepted(date, c.sch.Except) && !afterUntil(date, c.sch.Until)
}

// nextExpr dispatches to the per-variant forward search, each bounded to
// the horizon eval.rs documents for that shape.
func (c evalCtx) nextExpr(now time.Time) (time.Time, bool, *Error) {
	today := fromTime(now.In(c.loc))

	switch e := c.expr.(type) {
	case IntervalRepeat:
		return c.nextIntervalRepeat(e, now)

	case DayRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		for i := 0; i <= 8*maxInt(e.Interval, 1); i++ {
			d := today.AddDays(i)
			if !matchesDayFilter(d, e.Days) || !alignedToDayInterval(d, anchor, e.Interval) {
				continue
			}
			if !c.qualifies(d) {
				continue
			}
			if t, ok := earliestFutureAtTimes(d, e.Times, c.loc, now); ok {
				return t, true, nil
			}
		}
		return time.Time{}, false, nil

	case WeekRepeat:
		anchor := anchorOrDefault(c.sch, epochMonday)
		for i := 0; i <= 7*54*maxInt(e.Interval, 1); i++ {
			d := today.AddDays(i)
			if !alignedToWeekInterval(d, anchor, e.Interval) {
				continue
			}
			if !weekdayIn(d.Weekday(), e.Days) {
				continue
			}
			if !c.qualifies(d) {
				continue
			}
			if t, ok := earliestFutureAtTimes(d, e.Times, c.loc, now); ok {
				return t, true, nil
			}
		}
		return time.Time{}, false, nil

	case MonthRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		y, m := today.Year, today.Month
		for i := 0; i <= 24*maxInt(e.Interval, 1); i++ {
			if alignedToMonthInterval(y, m, anchor, e.Interval) {
				cands := monthTargetDatesIn(y, m, e.Target)
				best, found := earliestAmong(cands, e.Times, c.loc, now, c.qualifies)
				if found {
					return best, true, nil
				}
			}
			y, m = addMonths(y, m, 1)
		}
		return time.Time{}, false, nil

	case OrdinalRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		y, m := today.Year, today.Month
		for i := 0; i <= 24*maxInt(e.Interval, 1); i++ {
			if alignedToMonthInterval(y, m, anchor, e.Interval) {
				if d, ok := ordinalRepeatDate(y, m, e); ok {
					if c.qualifies(d) {
						if t, ok := earliestFutureAtTimes(d, e.Times, c.loc, now); ok {
							return t, true, nil
						}
					}
				}
			}
			y, m = addMonths(y, m, 1)
		}
		return time.Time{}, false, nil

	case YearRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		for i := 0; i <= 8*maxInt(e.Interval, 1); i++ {
			y := today.Year + i
			if !alignedToYearInterval(y, anchor, e.Interval) {
				continue
			}
			if d, ok := yearTargetDateIn(y, e.Target); ok {
				if c.qualifies(d) {
					if t, ok := earliestFutureAtTimes(d, e.Times, c.loc, now); ok {
						return t, true, nil
					}
				}
			}
		}
		return time.Time{}, false, nil

	case SingleDate:
		return c.nextSingleDate(e, now, today)

	default:
		return time.Time{}, false, evalErrorf("unknown schedule shape")
	}
}

func (c evalCtx) previousExpr(now time.Time) (time.Time, bool, *Error) {
	today := fromTime(now.In(c.loc))

	switch e := c.expr.(type) {
	case IntervalRepeat:
		return c.previousIntervalRepeat(e, now)

	case DayRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		for i := 0; i <= 8*maxInt(e.Interval, 1); i++ {
			d := today.AddDays(-i)
			if !matchesDayFilter(d, e.Days) || !alignedToDayInterval(d, anchor, e.Interval) {
				continue
			}
			if !c.qualifies(d) {
				continue
			}
			if t, ok := latestPastAtTimes(d, e.Times, c.loc, now); ok {
				return t, true, nil
			}
		}
		return time.Time{}, false, nil

	case WeekRepeat:
		anchor := anchorOrDefault(c.sch, epochMonday)
		for i := 0; i <= 7*54*maxInt(e.Interval, 1); i++ {
			d := today.AddDays(-i)
			if !alignedToWeekInterval(d, anchor, e.Interval) {
				continue
			}
			if !weekdayIn(d.Weekday(), e.Days) {
				continue
			}
			if !c.qualifies(d) {
				continue
			}
			if t, ok := latestPastAtTimes(d, e.Times, c.loc, now); ok {
				return t, true, nil
			}
		}
		return time.Time{}, false, nil

	case MonthRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		y, m := today.Year, today.Month
		for i := 0; i <= 24*maxInt(e.Interval, 1); i++ {
			if alignedToMonthInterval(y, m, anchor, e.Interval) {
				cands := monthTargetDatesIn(y, m, e.Target)
				best, found := latestAmong(cands, e.Times, c.loc, now, c.qualifies)
				if found {
					return best, true, nil
				}
			}
			y, m = addMonths(y, m, -1)
		}
		return time.Time{}, false, nil

	case OrdinalRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		y, m := today.Year, today.Month
		for i := 0; i <= 24*maxInt(e.Interval, 1); i++ {
			if alignedToMonthInterval(y, m, anchor, e.Interval) {
				if d, ok := ordinalRepeatDate(y, m, e); ok {
					if c.qualifies(d) {
						if t, ok := latestPastAtTimes(d, e.Times, c.loc, now); ok {
							return t, true, nil
						}
					}
				}
			}
			y, m = addMonths(y, m, -1)
		}
		return time.Time{}, false, nil

	case YearRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		for i := 0; i <= 8*maxInt(e.Interval, 1); i++ {
			y := today.Year - i
			if !alignedToYearInterval(y, anchor, e.Interval) {
				continue
			}
			if d, ok := yearTargetDateIn(y, e.Target); ok {
				if c.qualifies(d) {
					if t, ok := latestPastAtTimes(d, e.Times, c.loc, now); ok {
						return t, true, nil
					}
				}
			}
		}
		return time.Time{}, false, nil

	case SingleDate:
		return c.previousSingleDate(e, now, today)

	default:
		return time.Time{}, false, evalErrorf("unknown schedule shape")
	}
}

// nextSingleDate and previousSingleDate are handled outside the generic
// month-bounded loops above because an ISO single date may lie arbitrarily
// far in the future or past (no 8-year horizon applies to it); only named
// month/day dates repeat yearly and so use an 8-year lookahead/lookback.
func (c evalCtx) nextSingleDate(e SingleDate, now time.Time, today civilDate) (time.Time, bool, *Error) {
	switch v := e.Date.(type) {
	case DateSpecISO:
		if !c.qualifies(v.Date) {
			return time.Time{}, false, nil
		}
		return earliestFutureAtTimesErr(v.Date, e.Times, c.loc, now)
	case DateSpecNamed:
		for i := 0; i <= 8; i++ {
			y := today.Year + i
			d, ok := newCivilDate(y, int(v.Month), v.Day)
			if !ok || !c.qualifies(d) {
				continue
			}
			if t, ok := earliestFutureAtTimes(d, e.Times, c.loc, now); ok {
				return t, true, nil
			}
		}
		return time.Time{}, false, nil
	default:
		return time.Time{}, false, nil
	}
}

func (c evalCtx) previousSingleDate(e SingleDate, now time.Time, today civilDate) (time.Time, bool, *Error) {
	switch v := e.Date.(type) {
	case DateSpecISO:
		if !c.qualifies(v.Date) {
			return time.Time{}, false, nil
		}
		t, ok := latestPastAtTimes(v.Date, e.Times, c.loc, now)
		return t, ok, nil
	case DateSpecNamed:
		for i := 0; i <= 8; i++ {
			y := today.Year - i
			d, ok := newCivilDate(y, int(v.Month), v.Day)
			if !ok || !c.qualifies(d) {
				continue
			}
			if t, ok := latestPastAtTimes(d, e.Times, c.loc, now); ok {
				return t, true, nil
			}
		}
		return time.Time{}, false, nil
	default:
		return time.Time{}, false, nil
	}
}

func earliestFutureAtTimesErr(date civilDate, times []TimeOfDay, loc *time.Location, now time.Time) (time.Time, bool, *Error) {
	t, ok := earliestFutureAtTimes(date, times, loc, now)
	return t, ok, nil
}

func ordinalRepeatDate(year, month int, e OrdinalRepeat) (civilDate, bool) {
	if e.Ordinal == Last {
		return lastWeekdayOccurrence(year, month, e.Day), true
	}
	return nthWeekdayOfMonth(year, month, e.Day, e.Ordinal.N())
}

func weekdayIn(wd Weekday, days []Weekday) bool {
	for _, d := range days {
		if d == wd {
			return true
		}
	}
	return false
}

func earliestAmong(dates []civilDate, times []TimeOfDay, loc *time.Location, now time.Time, qualifies func(civilDate) bool) (time.Time, bool) {
	var best time.Time
	found := false
	for _, d := range dates {
		if !qualifies(d) {
			continue
		}
		if t, ok := earliestFutureAtTimes(d, times, loc, now); ok && (!found || t.Before(best)) {
			best, found = t, true
		}
	}
	return best, found
}

func latestAmong(dates []civilDate, times []TimeOfDay, loc *time.Location, now time.Time, qualifies func(civilDate) bool) (time.Time, bool) {
	var best time.Time
	found := false
	for _, d := range dates {
		if !qualifies(d) {
			continue
		}
		if t, ok := latestPastAtTimes(d, times, loc, now); ok && (!found || t.After(best)) {
			best, found = t, true
		}
	}
	return best, found
}

// nextIntervalRepeat walks the [From,To] grid day by day, stepping by
// Interval Unit within each day's window, bounded to 400 days as eval.rs
// documents.
func (c evalCtx) nextIntervalRepeat(e IntervalRepeat, now time.Time) (time.Time, bool, *Error) {
	today := fromTime(now.In(c.loc))
	step := time.Duration(e.Interval) * e.Unit.duration()

	for i := 0; i <= 400; i++ {
		d := today.AddDays(i)
		if e.DayFilter != nil && !matchesDayFilter(d, e.DayFilter) {
			continue
		}
		if !c.qualifies(d) {
			continue
		}
		from := zonedAt(d, e.From, c.loc)
		to := zonedAt(d, e.To, c.loc)
		if to.Before(from) {
			continue
		}
		for t := from; !t.After(to); t = t.Add(step) {
			if t.After(now) {
				return t, true, nil
			}
		}
	}
	return time.Time{}, false, nil
}

func (c evalCtx) previousIntervalRepeat(e IntervalRepeat, now time.Time) (time.Time, bool, *Error) {
	today := fromTime(now.In(c.loc))
	step := time.Duration(e.Interval) * e.Unit.duration()

	for i := 0; i <= 400; i++ {
		d := today.AddDays(-i)
		if e.DayFilter != nil && !matchesDayFilter(d, e.DayFilter) {
			continue
		}
		if !c.qualifies(d) {
			continue
		}
		from := zonedAt(d, e.From, c.loc)
		to := zonedAt(d, e.To, c.loc)
		if to.Before(from) {
			continue
		}
		var best time.Time
		found := false
		for t := from; !t.After(to); t = t.Add(step) {
			if t.Before(now) {
				best, found = t, true
			}
		}
		if found {
			return best, true, nil
		}
	}
	return time.Time{}, false, nil
}

func (u IntervalUnit) duration() time.Duration {
	if u == Hours {
		return time.Hour
	}
	return time.Minute
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// search drives NextFrom/PreviousFrom. The during/except/until retry that
// eval.rs performs as an outer loop is folded directly into each variant's
// date-scanning loop via qualifies(), which skips disqualified candidates
// in place of re-searching from scratch, bounded by each loop's own
// day/month/year horizon. A horizon that runs out with no match found is
// reported internally as ErrNoMoreOccurrences, the same way io.EOF reports
// a clean end of input; NextFrom/PreviousFrom catch it and translate it
// back into ok=false rather than surfacing it as an error to callers.
func (s Schedule) search(now time.Time, forward bool) (time.Time, bool, *Error) {
	c, err := newEvalCtx(s)
	if err != nil {
		return time.Time{}, false, err
	}
	var t time.Time
	var ok bool
	if forward {
		t, ok, err = c.nextExpr(now)
	} else {
		t, ok, err = c.previousExpr(now)
	}
	if err != nil {
		return time.Time{}, false, err
	}
	if !ok {
		return time.Time{}, false, &Error{Kind: KindEval, Message: ErrNoMoreOccurrences.Error(), Cause: ErrNoMoreOccurrences}
	}
	return t, true, nil
}

// NextFrom returns the earliest instant strictly after now at which the
// schedule fires, or ok=false if none exists within the search horizon.
func (s Schedule) NextFrom(now time.Time) (time.Time, bool, error) {
	t, ok, err := s.search(now, true)
	if err != nil {
		if errors.Is(err, ErrNoMoreOccurrences) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return t, ok, nil
}

// PreviousFrom returns the latest instant strictly before now at which the
// schedule fired, or ok=false if none exists within the search horizon.
func (s Schedule) PreviousFrom(now time.Time) (time.Time, bool, error) {
	t, ok, err := s.search(now, false)
	if err != nil {
		if errors.Is(err, ErrNoMoreOccurrences) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return t, ok, nil
}

// NextNFrom returns up to n consecutive future occurrences starting after now.
func (s Schedule) NextNFrom(now time.Time, n int) ([]time.Time, error) {
	out := make([]time.Time, 0, n)
	cursor := now
	for len(out) < n {
		t, ok, err := s.NextFrom(cursor)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, t)
		cursor = t
	}
	return out, nil
}

// Matches reports whether the schedule fires at instant t.
func (s Schedule) Matches(t time.Time) (bool, error) {
	c, err := newEvalCtx(s)
	if err != nil {
		return false, err
	}
	zdt := t.In(c.loc)
	date := fromTime(zdt)
	if !c.qualifies(date) {
		return false, nil
	}

	switch e := c.expr.(type) {
	case IntervalRepeat:
		if e.DayFilter != nil && !matchesDayFilter(date, e.DayFilter) {
			return false, nil
		}
		from := zonedAt(date, e.From, c.loc)
		to := zonedAt(date, e.To, c.loc)
		if zdt.Before(from) || zdt.After(to) {
			return false, nil
		}
		step := time.Duration(e.Interval) * e.Unit.duration()
		elapsed := zdt.Sub(from)
		return elapsed%step == 0, nil

	case DayRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		if !matchesDayFilter(date, e.Days) || !alignedToDayInterval(date, anchor, e.Interval) {
			return false, nil
		}
		return timeListMatches(date, e.Times, c.loc, t, zdt), nil

	case WeekRepeat:
		anchor := anchorOrDefault(c.sch, epochMonday)
		if !alignedToWeekInterval(date, anchor, e.Interval) || !weekdayIn(date.Weekday(), e.Days) {
			return false, nil
		}
		return timeListMatches(date, e.Times, c.loc, t, zdt), nil

	case MonthRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		if !alignedToMonthInterval(date.Year, date.Month, anchor, e.Interval) || !matchesMonthTarget(date, e.Target) {
			return false, nil
		}
		return timeListMatches(date, e.Times, c.loc, t, zdt), nil

	case OrdinalRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		if !alignedToMonthInterval(date.Year, date.Month, anchor, e.Interval) {
			return false, nil
		}
		want, ok := ordinalRepeatDate(date.Year, date.Month, e)
		if !ok || !date.Equal(want) {
			return false, nil
		}
		return timeListMatches(date, e.Times, c.loc, t, zdt), nil

	case YearRepeat:
		anchor := anchorOrDefault(c.sch, epochDay)
		if !alignedToYearInterval(date.Year, anchor, e.Interval) {
			return false, nil
		}
		want, ok := yearTargetDateIn(date.Year, e.Target)
		if !ok || !date.Equal(want) {
			return false, nil
		}
		return timeListMatches(date, e.Times, c.loc, t, zdt), nil

	case SingleDate:
		switch v := e.Date.(type) {
		case DateSpecISO:
			if !date.Equal(v.Date) {
				return false, nil
			}
		case DateSpecNamed:
			if date.Month != int(v.Month) || date.Day != v.Day {
				return false, nil
			}
		}
		return timeListMatches(date, e.Times, c.loc, t, zdt), nil

	default:
		return false, evalErrorf("unknown schedule shape")
	}
}

// Occurrences returns a pull-based iterator over every instant the schedule
// fires strictly after from, ascending. Each call to the returned function
// advances the cursor one minute past the previously emitted instant,
// matching the single-threaded, resumable cursor semantics of a lazy
// forward scan; it stops (ok=false) once the search horizon is exhausted.
func (s Schedule) Occurrences(from time.Time) func() (time.Time, bool, error) {
	cursor := from
	return func() (time.Time, bool, error) {
		t, ok, err := s.NextFrom(cursor)
		if err != nil || !ok {
			return time.Time{}, false, err
		}
		cursor = t.Add(time.Minute)
		return t, true, nil
	}
}

// Between returns every instant the schedule fires in (from, to], from
// exclusive and to inclusive.
func (s Schedule) Between(from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	cursor := from
	for {
		t, ok, err := s.NextFrom(cursor)
		if err != nil {
			return nil, err
		}
		if !ok || t.After(to) {
			return out, nil
		}
		out = append(out, t)
		cursor = t
	}
}
