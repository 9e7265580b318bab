// astjson.go - JSON rendering of a Schedule's AST for cmd/hron's --parse
// flag.
//
// Grounded on original_source/rust/hron/src/lib.rs's serde shape: a
// "kind" discriminant plus the variant's own fields, alongside the
// uniform except/until/starting/during/timezone modifier set, per
// SPEC_FULL.md's JSON surface section. Building this as plain
// map[string]any keeps it marshalable with the standard library's
// encoding/json without hand-writing MarshalJSON on every AST type.

package hron

// ScheduleAST renders s as a JSON-marshalable value: a "kind" discriminant
// naming the schedule shape, that shape's own fields, and the uniform
// except/until/starting/during/timezone modifier set.
func ScheduleAST(s Schedule) map[string]any {
	m := map[string]any{}
	switch e := s.Expr.(type) {
	case IntervalRepeat:
		m["kind"] = "interval"
		m["interval"] = map[string]any{"value": e.Interval, "unit": intervalUnitJSON(e.Unit)}
		m["from"] = e.From.String()
		m["to"] = e.To.String()
		if e.DayFilter != nil {
			m["day_filter"] = dayFilterJSON(e.DayFilter)
		}
	case DayRepeat:
		m["kind"] = "day"
		m["interval"] = map[string]any{"value": e.Interval, "unit": "days"}
		m["days"] = dayFilterJSON(e.Days)
		m["times"] = timesJSON(e.Times)
	case WeekRepeat:
		m["kind"] = "week"
		m["interval"] = map[string]any{"value": e.Interval, "unit": "weeks"}
		m["days"] = weekdaysJSON(e.Days)
		m["times"] = timesJSON(e.Times)
	case MonthRepeat:
		m["kind"] = "month"
		m["interval"] = map[string]any{"value": e.Interval, "unit": "months"}
		m["target"] = monthTargetJSON(e.Target)
		m["times"] = timesJSON(e.Times)
	case OrdinalRepeat:
		m["kind"] = "ordinal"
		m["interval"] = map[string]any{"value": e.Interval, "unit": "months"}
		m["ordinal"] = e.Ordinal.String()
		m["day"] = e.Day.String()
		m["times"] = timesJSON(e.Times)
	case SingleDate:
		m["kind"] = "single_date"
		m["date"] = dateSpecJSON(e.Date)
		m["times"] = timesJSON(e.Times)
	case YearRepeat:
		m["kind"] = "year"
		m["interval"] = map[string]any{"value": e.Interval, "unit": "years"}
		m["target"] = yearTargetJSON(e.Target)
		m["times"] = timesJSON(e.Times)
	}

	except := make([]any, 0, len(s.Except))
	for _, ex := range s.Except {
		except = append(except, exceptionJSON(ex))
	}
	m["except"] = except

	if s.Until != nil {
		m["until"] = untilJSON(s.Until)
	} else {
		m["until"] = nil
	}

	if s.Anchor != nil {
		m["starting"] = map[string]any{"year": s.Anchor.Year, "month": s.Anchor.Month, "day": s.Anchor.Day}
	} else {
		m["starting"] = nil
	}

	during := make([]string, 0, len(s.During))
	for _, mn := range s.During {
		during = append(during, mn.String())
	}
	m["during"] = during

	if s.HasTimezone() {
		m["timezone"] = s.Timezone
	} else {
		m["timezone"] = nil
	}

	return m
}

func intervalUnitJSON(u IntervalUnit) string {
	if u == Hours {
		return "hours"
	}
	return "minutes"
}

func timesJSON(times []TimeOfDay) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}
	return out
}

func weekdaysJSON(days []Weekday) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.String())
	}
	return out
}

func dayFilterJSON(f DayFilter) any {
	switch v := f.(type) {
	case DayFilterEvery:
		return "every"
	case DayFilterWeekday:
		return "weekday"
	case DayFilterWeekend:
		return "weekend"
	case DayFilterDays:
		return weekdaysJSON(v.Days)
	default:
		return nil
	}
}

func monthTargetJSON(t MonthTarget) any {
	switch v := t.(type) {
	case MonthTargetDays:
		days := make([]any, 0, len(v.Specs))
		for _, spec := range v.Specs {
			switch s := spec.(type) {
			case DayOfMonthSingle:
				days = append(days, s.Day)
			case DayOfMonthRange:
				days = append(days, map[string]any{"start": s.Start, "end": s.End})
			}
		}
		return map[string]any{"kind": "days", "days": days}
	case MonthTargetLastDay:
		return map[string]any{"kind": "last_day"}
	case MonthTargetLastWeekday:
		return map[string]any{"kind": "last_weekday"}
	case MonthTargetNearestWeekday:
		dir := "none"
		switch v.Direction {
		case NearestNext:
			dir = "next"
		case NearestPrevious:
			dir = "previous"
		}
		return map[string]any{"kind": "nearest_weekday", "day": v.Day, "direction": dir}
	default:
		return nil
	}
}

func yearTargetJSON(t YearTarget) any {
	switch v := t.(type) {
	case YearTargetDate:
		return map[string]any{"kind": "date", "month": v.Month.String(), "day": v.Day}
	case YearTargetOrdinalWeekday:
		return map[string]any{"kind": "ordinal_weekday", "ordinal": v.Ordinal.String(), "weekday": v.Weekday.String(), "month": v.Month.String()}
	case YearTargetDayOfMonth:
		return map[string]any{"kind": "day_of_month", "day": v.Day, "month": v.Month.String()}
	case YearTargetLastWeekday:
		return map[string]any{"kind": "last_weekday", "month": v.Month.String()}
	default:
		return nil
	}
}

func dateSpecJSON(d DateSpec) any {
	switch v := d.(type) {
	case DateSpecISO:
		return map[string]any{"kind": "iso", "year": v.Date.Year, "month": v.Date.Month, "day": v.Date.Day}
	case DateSpecNamed:
		return map[string]any{"kind": "named", "month": v.Month.String(), "day": v.Day}
	default:
		return nil
	}
}

func exceptionJSON(e Exception) any {
	switch v := e.(type) {
	case ExceptionNamed:
		return map[string]any{"kind": "named", "month": v.Month.String(), "day": v.Day}
	case ExceptionISO:
		return map[string]any{"kind": "iso", "year": v.Date.Year, "month": v.Date.Month, "day": v.Date.Day}
	default:
		return nil
	}
}

func untilJSON(u UntilSpec) any {
	switch v := u.(type) {
	case UntilSpecISO:
		return map[string]any{"kind": "iso", "year": v.Date.Year, "month": v.Date.Month, "day": v.Date.Day}
	case UntilSpecNamed:
		return map[string]any{"kind": "named", "month": v.Month.String(), "day": v.Day}
	default:
		return nil
	}
}
