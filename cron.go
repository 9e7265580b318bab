// cron.go - the bidirectional cron bridge: ToCron/FromCron/ExplainCron.
//
// Grounded on the teacher's own cron.go (predefinedExpressions map for the
// `@` shortcuts) and fields.go's cronFieldParser for general field value
// sets (month ranges/steps/names, and the plain numeric day-of-month/
// day-of-week lists left over once L/LW/NW/N#M/NL have been intercepted).

package hron

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var predefinedExpressions = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// ToCron renders s as a 5-field cron string, refusing any schedule cron
// cannot express.
func ToCron(s Schedule) (string, error) {
	if len(s.Except) > 0 {
		return "", cronErrorf("cron cannot express an 'except' clause")
	}
	if s.Until != nil {
		return "", cronErrorf("cron cannot express an 'until' clause")
	}
	if len(s.During) > 0 {
		return "", cronErrorf("cron cannot express a 'during' clause")
	}

	switch e := s.Expr.(type) {
	case DayRepeat:
		if e.Interval != 1 {
			return "", cronErrorf("cron cannot express a day interval other than 1")
		}
		if len(e.Times) != 1 {
			return "", cronErrorf("cron requires exactly one time of day")
		}
		dow, err := dayFilterToCronDOW(e.Days)
		if err != nil {
			return "", err
		}
		t := e.Times[0]
		return fmt.Sprintf("%d %d * * %s", t.Minute, t.Hour, dow), nil

	case IntervalRepeat:
		if e.From != (TimeOfDay{0, 0}) || e.To != (TimeOfDay{23, 59}) {
			return "", cronErrorf("cron can only express an interval spanning the full day (00:00 to 23:59)")
		}
		if e.DayFilter != nil {
			return "", cronErrorf("cron cannot express a day filter alongside a minute/hour interval")
		}
		switch e.Unit {
		case Minutes:
			if 60%e.Interval != 0 {
				return "", cronErrorf("cron's */%d minute step does not divide evenly into an hour", e.Interval)
			}
			return fmt.Sprintf("*/%d * * * *", e.Interval), nil
		case Hours:
			return fmt.Sprintf("0 */%d * * *", e.Interval), nil
		default:
			return "", cronErrorf("unknown interval unit")
		}

	case MonthRepeat:
		if e.Interval != 1 {
			return "", cronErrorf("cron cannot express a month interval other than 1")
		}
		if len(e.Times) != 1 {
			return "", cronErrorf("cron requires exactly one time of day")
		}
		v, ok := e.Target.(MonthTargetDays)
		if !ok {
			return "", cronErrorf("cron cannot express this month target (last day/last weekday/nearest weekday have no cron equivalent here)")
		}
		days := v.expandDays()
		if len(days) == 0 {
			return "", cronErrorf("empty day-of-month target")
		}
		sort.Ints(days)
		parts := make([]string, len(days))
		for i, d := range days {
			parts[i] = strconv.Itoa(d)
		}
		t := e.Times[0]
		return fmt.Sprintf("%d %d %s * *", t.Minute, t.Hour, strings.Join(parts, ",")), nil

	default:
		return "", cronErrorf("cron cannot express this schedule shape")
	}
}

func dayFilterToCronDOW(f DayFilter) (string, error) {
	switch v := f.(type) {
	case DayFilterEvery:
		return "*", nil
	case DayFilterWeekday:
		return "1-5", nil
	case DayFilterWeekend:
		return "0,6", nil
	case DayFilterDays:
		if len(v.Days) == 0 {
			return "", cronErrorf("empty day-of-week filter")
		}
		nums := make([]int, 0, len(v.Days))
		for _, d := range v.Days {
			nums = append(nums, d.CronNumber())
		}
		sort.Ints(nums)
		parts := make([]string, len(nums))
		for i, n := range nums {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", cronErrorf("unsupported day-of-week filter")
	}
}

// FromCron parses a 5-field cron expression or an `@` shortcut.
func FromCron(text string) (Schedule, error) {
	fields, err := expandCronText(text)
	if err != nil {
		return Schedule{}, err
	}
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	during, err := monthFieldToDuring(month)
	if err != nil {
		return Schedule{}, err
	}

	// 1. DOW N#K.
	if idx := strings.Index(dow, "#"); idx >= 0 {
		if dom != "*" {
			return Schedule{}, cronErrorf("day-of-week N#K requires day-of-month to be '*'")
		}
		wdNum, err := parseCronDowToken(dow[:idx])
		if err != nil {
			return Schedule{}, err
		}
		n, err := strconv.Atoi(dow[idx+1:])
		if err != nil || n < 1 || n > 5 {
			return Schedule{}, cronErrorf("occurrence in %q must be 1..5", dow)
		}
		wd, ok := weekdayFromCron(wdNum)
		if !ok {
			return Schedule{}, cronErrorf("day-of-week value %d out of range", wdNum)
		}
		tod, err := cronTimeOfDay(minute, hour)
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{
			Expr:   OrdinalRepeat{Interval: 1, Ordinal: OrdinalPosition(n), Day: wd, Times: []TimeOfDay{tod}},
			During: during,
		}, nil
	}

	// 2. DOW NL.
	if strings.HasSuffix(dow, "L") && dow != "*" {
		wdNum, err := parseCronDowToken(strings.TrimSuffix(dow, "L"))
		if err != nil {
			return Schedule{}, err
		}
		wd, ok := weekdayFromCron(wdNum)
		if !ok {
			return Schedule{}, cronErrorf("day-of-week value %d out of range", wdNum)
		}
		tod, err := cronTimeOfDay(minute, hour)
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{
			Expr:   OrdinalRepeat{Interval: 1, Ordinal: Last, Day: wd, Times: []TimeOfDay{tod}},
			During: during,
		}, nil
	}

	domUp := strings.ToUpper(dom)

	// 3. DOM L / LW.
	if domUp == "L" {
		tod, err := cronTimeOfDay(minute, hour)
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{Expr: MonthRepeat{Interval: 1, Target: MonthTargetLastDay{}, Times: []TimeOfDay{tod}}, During: during}, nil
	}
	if domUp == "LW" {
		tod, err := cronTimeOfDay(minute, hour)
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{Expr: MonthRepeat{Interval: 1, Target: MonthTargetLastWeekday{}, Times: []TimeOfDay{tod}}, During: during}, nil
	}

	// 4. DOM ending in W (not LW): refused.
	if strings.HasSuffix(domUp, "W") {
		return Schedule{}, cronErrorf("nearest-weekday (W) day-of-month specifiers have no equivalent here")
	}

	// 5. minute = [range]/step.
	if strings.Contains(minute, "/") {
		step, err := cronStepOf(minute)
		if err != nil {
			return Schedule{}, err
		}
		from, to, err := cronHourWindow(hour)
		if err != nil {
			return Schedule{}, err
		}
		filter, err := optionalDowFilter(dow)
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{
			Expr:   IntervalRepeat{Interval: step, Unit: Minutes, From: from, To: to, DayFilter: filter},
			During: during,
		}, nil
	}

	// 6. hour = [range]/step with minute = 0.
	if strings.Contains(hour, "/") && minute == "0" {
		step, err := cronStepOf(hour)
		if err != nil {
			return Schedule{}, err
		}
		filter, err := optionalDowFilter(dow)
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{
			Expr:   IntervalRepeat{Interval: step, Unit: Hours, From: TimeOfDay{0, 0}, To: TimeOfDay{23, 59}, DayFilter: filter},
			During: during,
		}, nil
	}

	tod, err := cronTimeOfDay(minute, hour)
	if err != nil {
		return Schedule{}, err
	}

	// 7. DOM != '*' and DOW == '*' ⇒ MonthRepeat(Days).
	if dom != "*" && dow == "*" {
		field, perr := newCronFieldParser(cronFieldDayOfMonth).Parse(dom)
		if perr != nil {
			return Schedule{}, cronErrorf("%s", perr.Error())
		}
		days := field.All()
		sort.Ints(days)
		return Schedule{
			Expr:   MonthRepeat{Interval: 1, Target: MonthTargetDays{Specs: collapseDaySpecs(days)}, Times: []TimeOfDay{tod}},
			During: during,
		}, nil
	}

	// 8. DayRepeat.
	filter, err := dowFieldToDayFilter(dow)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{
		Expr:   DayRepeat{Interval: 1, Days: filter, Times: []TimeOfDay{tod}},
		During: during,
	}, nil
}

// ExplainCron renders FromCron(text)'s display form, with an advisory line
// appended whenever a minute step does not evenly divide an hour.
func ExplainCron(text string) (string, error) {
	s, err := FromCron(text)
	if err != nil {
		return "", err
	}
	out := s.String()

	fields, ferr := expandCronText(text)
	if ferr != nil {
		return out, nil
	}
	minute := fields[0]
	if strings.Contains(minute, "/") {
		if step, serr := cronStepOf(minute); serr == nil && 60%step != 0 {
			var mins []string
			for m := 0; m < 60; m += step {
				mins = append(mins, strconv.Itoa(m))
			}
			out += fmt.Sprintf("\nnote: every %d minutes does not divide evenly into an hour; actual minutes: %s", step, strings.Join(mins, ", "))
		}
	}
	return out, nil
}

func expandCronText(text string) ([5]string, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "@") {
		expanded, ok := predefinedExpressions[text]
		if !ok {
			return [5]string{}, cronErrorf("unknown cron shortcut %q", text)
		}
		text = expanded
	}
	parts := strings.Fields(text)
	if len(parts) != 5 {
		return [5]string{}, cronErrorf("cron expression must have 5 fields, got %d", len(parts))
	}
	var out [5]string
	for i, p := range parts {
		if p == "?" {
			p = "*"
		}
		out[i] = p
	}
	return out, nil
}

func monthFieldToDuring(month string) ([]MonthName, error) {
	if month == "*" {
		return nil, nil
	}
	field, err := newCronFieldParser(cronFieldMonth).Parse(month)
	if err != nil {
		return nil, cronErrorf("%s", err.Error())
	}
	months := field.All()
	out := make([]MonthName, len(months))
	for i, m := range months {
		out[i] = MonthName(m)
	}
	return out, nil
}

func parseCronDowToken(s string) (int, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if v, ok := cronDayNames[up]; ok {
		return v, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, cronErrorf("invalid day-of-week value %q", s)
	}
	return n, nil
}

func cronTimeOfDay(minute, hour string) (TimeOfDay, error) {
	m, err := strconv.Atoi(minute)
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, cronErrorf("unsupported minute field %q", minute)
	}
	h, err := strconv.Atoi(hour)
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, cronErrorf("unsupported hour field %q", hour)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func cronStepOf(field string) (int, error) {
	parts := strings.SplitN(field, "/", 2)
	if len(parts) != 2 {
		return 0, cronErrorf("invalid step field %q", field)
	}
	step, err := strconv.Atoi(parts[1])
	if err != nil || step < 1 {
		return 0, cronErrorf("invalid step value in %q (must be a positive integer)", field)
	}
	return step, nil
}

// cronHourWindow derives an IntervalRepeat's [From,To] window from a
// minute-step expression's hour field, which may be '*', a single hour, or
// an inclusive range.
func cronHourWindow(hour string) (TimeOfDay, TimeOfDay, error) {
	if hour == "*" {
		return TimeOfDay{0, 0}, TimeOfDay{23, 59}, nil
	}
	if strings.Contains(hour, "-") {
		parts := strings.SplitN(hour, "-", 2)
		a, err1 := strconv.Atoi(parts[0])
		b, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || a < 0 || a > 23 || b < 0 || b > 23 {
			return TimeOfDay{}, TimeOfDay{}, cronErrorf("invalid hour range %q", hour)
		}
		if a > b {
			return TimeOfDay{}, TimeOfDay{}, cronErrorf("invalid hour range %q: start greater than end", hour)
		}
		return TimeOfDay{a, 0}, TimeOfDay{b, 0}, nil
	}
	h, err := strconv.Atoi(hour)
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, TimeOfDay{}, cronErrorf("invalid hour field %q", hour)
	}
	return TimeOfDay{h, 0}, TimeOfDay{h, 0}, nil
}

// optionalDowFilter attaches a DayFilter derived from a cron dow field to
// an IntervalRepeat, or nil when the field is unrestricted.
func optionalDowFilter(dow string) (DayFilter, error) {
	if dow == "*" {
		return nil, nil
	}
	return dowFieldToDayFilter(dow)
}

// collapseDaySpecs groups a sorted, deduplicated day list into ranges of
// consecutive days, so that e.g. "1-5" round-trips back to a single "1st to
// 5th" span rather than five individual days.
func collapseDaySpecs(days []int) []DayOfMonthSpec {
	var specs []DayOfMonthSpec
	for i := 0; i < len(days); {
		j := i
		for j+1 < len(days) && days[j+1] == days[j]+1 {
			j++
		}
		if j > i {
			specs = append(specs, DayOfMonthRange{Start: days[i], End: days[j]})
		} else {
			specs = append(specs, DayOfMonthSingle{Day: days[i]})
		}
		i = j + 1
	}
	return specs
}

// dowFieldToDayFilter parses a plain (non-special) cron day-of-week field
// into a DayFilter, recognizing the canonical weekday/weekend value sets.
func dowFieldToDayFilter(dow string) (DayFilter, error) {
	if dow == "*" {
		return DayFilterEvery{}, nil
	}
	field, err := newCronFieldParser(cronFieldDayOfWeek).Parse(dow)
	if err != nil {
		return nil, cronErrorf("%s", err.Error())
	}
	values := field.All()
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	if len(set) == 5 && set[1] && set[2] && set[3] && set[4] && set[5] {
		return DayFilterWeekday{}, nil
	}
	if len(set) == 2 && set[0] && set[6] {
		return DayFilterWeekend{}, nil
	}
	days := make([]Weekday, 0, len(values))
	for _, v := range values {
		wd, ok := weekdayFromCron(v)
		if !ok {
			return nil, cronErrorf("day-of-week value %d out of range", v)
		}
		days = append(days, wd)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].ISONumber() < days[j].ISONumber() })
	return DayFilterDays{Days: days}, nil
}
