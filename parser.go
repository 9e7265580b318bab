// parser.go - hand-written recursive-descent parser over the token stream.
//
// Grounded on original_source/rust/hron/src/parser.rs's production
// structure (one method per grammar rule), re-expressed in the teacher's
// method-per-production style (cron.go's parseCron, fields.go's
// FieldParser.parsePart/parseRange/parseStep).

package hron

import "fmt"

type parser struct {
	toks  []token
	pos   int
	input string
}

// Parse parses an hron expression string into a Schedule.
func Parse(input string) (Schedule, error) {
	s, err := parseSchedule(input)
	if err != nil {
		return Schedule{}, err
	}
	return s, nil
}

func parseSchedule(input string) (Schedule, *Error) {
	lx := newLexer(input)
	toks, err := lx.tokenize()
	if err != nil {
		return Schedule{}, err
	}
	p := &parser{toks: toks, input: input}

	expr, err := p.parseExpr()
	if err != nil {
		return Schedule{}, err
	}
	s := Schedule{Expr: expr}
	if err := p.parseTrailingClauses(&s); err != nil {
		return Schedule{}, err
	}
	if !p.at(tokEOF) {
		return Schedule{}, p.unexpected("end of input")
	}
	return s, nil
}

func (p *parser) cur() token { return p.toks[p.pos] }
func (p *parser) at(k tokenKind) bool { return p.cur().Kind == k }
func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, *Error) {
	if !p.at(k) {
		return token{}, p.unexpected(what)
	}
	t := p.cur()
	p.next()
	return t, nil
}

func (p *parser) unexpected(what string) *Error {
	t := p.cur()
	if t.Kind == tokEOF {
		return parseErrorf(p.input, t.Span, "unexpected end of input, expected %s", what)
	}
	return parseErrorf(p.input, t.Span, "unexpected token %q, expected %s", p.input[t.Span.Start:t.Span.End], what)
}

// --- top-level expression ---

func (p *parser) parseExpr() (ScheduleExpr, *Error) {
	switch {
	case p.at(tokEvery):
		p.next()
		return p.parseEveryBody()
	case p.at(tokOn):
		p.next()
		return p.parseSingleDate()
	case p.at(tokOrdinalWord), p.at(tokLast):
		return p.parseOrdinalRepeatTop()
	default:
		return nil, p.unexpected("'every', 'on', or an ordinal weekday expression")
	}
}

func (p *parser) parseEveryBody() (ScheduleExpr, *Error) {
	switch {
	case p.at(tokDay):
		p.next()
		times, err := p.parseAtTimeList()
		if err != nil {
			return nil, err
		}
		return DayRepeat{Interval: 1, Days: DayFilterEvery{}, Times: times}, nil

	case p.at(tokWeekday):
		p.next()
		times, err := p.parseAtTimeList()
		if err != nil {
			return nil, err
		}
		return DayRepeat{Interval: 1, Days: DayFilterWeekday{}, Times: times}, nil

	case p.at(tokWeekend):
		p.next()
		times, err := p.parseAtTimeList()
		if err != nil {
			return nil, err
		}
		return DayRepeat{Interval: 1, Days: DayFilterWeekend{}, Times: times}, nil

	case p.at(tokWeekdayName):
		days, err := p.parseDayNameList()
		if err != nil {
			return nil, err
		}
		times, err := p.parseAtTimeList()
		if err != nil {
			return nil, err
		}
		return DayRepeat{Interval: 1, Days: DayFilterDays{days}, Times: times}, nil

	case p.at(tokYear):
		p.next()
		return p.parseYearTail(1)

	case p.at(tokMonth):
		p.next()
		return p.parseMonthTail(1)

	case p.at(tokNumber):
		n := p.cur().Num
		if n < 1 {
			return nil, parseErrorf(p.input, p.cur().Span, "repeat interval must be at least 1")
		}
		p.next()
		switch {
		case p.at(tokWeek), p.at(tokWeeks):
			p.next()
			return p.parseWeekTail(n)
		case p.at(tokMinUnit):
			p.next()
			return p.parseIntervalTail(n, Minutes)
		case p.at(tokHourUnit):
			p.next()
			return p.parseIntervalTail(n, Hours)
		case p.at(tokDay), p.at(tokDays):
			p.next()
			times, err := p.parseAtTimeList()
			if err != nil {
				return nil, err
			}
			return DayRepeat{Interval: n, Days: DayFilterEvery{}, Times: times}, nil
		case p.at(tokMonth), p.at(tokMonths):
			p.next()
			return p.parseMonthTail(n)
		case p.at(tokYear), p.at(tokYears):
			p.next()
			return p.parseYearTail(n)
		default:
			return nil, p.unexpected("'weeks', an interval unit, 'day(s)', 'month(s)', or 'year(s)'")
		}

	default:
		return nil, p.unexpected("'day', 'weekday', 'weekend', a weekday name, 'year', 'month', or a number")
	}
}

func (p *parser) parseWeekTail(interval int) (ScheduleExpr, *Error) {
	if _, err := p.expect(tokOn, "'on'"); err != nil {
		return nil, err
	}
	days, err := p.parseDayNameList()
	if err != nil {
		return nil, err
	}
	times, err := p.parseAtTimeList()
	if err != nil {
		return nil, err
	}
	return WeekRepeat{Interval: interval, Days: days, Times: times}, nil
}

func (p *parser) parseIntervalTail(interval int, unit IntervalUnit) (ScheduleExpr, *Error) {
	if _, err := p.expect(tokFrom, "'from'"); err != nil {
		return nil, err
	}
	from, err := p.parseTime()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokTo, "'to'"); err != nil {
		return nil, err
	}
	to, err := p.parseTime()
	if err != nil {
		return nil, err
	}
	var df DayFilter
	if p.at(tokOn) {
		p.next()
		df, err = p.parseDayTarget()
		if err != nil {
			return nil, err
		}
	}
	return IntervalRepeat{Interval: interval, Unit: unit, From: from, To: to, DayFilter: df}, nil
}

func (p *parser) parseDayTarget() (DayFilter, *Error) {
	switch {
	case p.at(tokWeekday):
		p.next()
		return DayFilterWeekday{}, nil
	case p.at(tokWeekend):
		p.next()
		return DayFilterWeekend{}, nil
	case p.at(tokWeekdayName):
		days, err := p.parseDayNameList()
		if err != nil {
			return nil, err
		}
		return DayFilterDays{days}, nil
	default:
		return nil, p.unexpected("'weekday', 'weekend', or a weekday name")
	}
}

func (p *parser) parseMonthTail(interval int) (ScheduleExpr, *Error) {
	if _, err := p.expect(tokOn, "'on'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokThe, "'the'"); err != nil {
		return nil, err
	}
	target, err := p.parseMonthTarget()
	if err != nil {
		return nil, err
	}
	times, err := p.parseAtTimeList()
	if err != nil {
		return nil, err
	}
	return MonthRepeat{Interval: interval, Target: target, Times: times}, nil
}

func (p *parser) parseMonthTarget() (MonthTarget, *Error) {
	switch {
	case p.at(tokLast):
		p.next()
		switch {
		case p.at(tokDay):
			p.next()
			return MonthTargetLastDay{}, nil
		case p.at(tokWeekday):
			p.next()
			return MonthTargetLastWeekday{}, nil
		default:
			return nil, p.unexpected("'day' or 'weekday'")
		}

	case p.at(tokNext), p.at(tokPrevious), p.at(tokNearest):
		dir := NearestDirectionNone
		if p.at(tokNext) {
			dir = NearestNext
			p.next()
		} else if p.at(tokPrevious) {
			dir = NearestPrevious
			p.next()
		}
		if _, err := p.expect(tokNearest, "'nearest'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokWeekday, "'weekday'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokTo, "'to'"); err != nil {
			return nil, err
		}
		dayTok, err := p.expect(tokOrdinalNumber, "an ordinal day number")
		if err != nil {
			return nil, err
		}
		return MonthTargetNearestWeekday{Day: dayTok.Num, Direction: dir}, nil

	case p.at(tokOrdinalNumber):
		specs, err := p.parseOrdinalDayList()
		if err != nil {
			return nil, err
		}
		return MonthTargetDays{Specs: specs}, nil

	default:
		return nil, p.unexpected("an ordinal day list, 'last day/weekday', or a nearest-weekday target")
	}
}

func (p *parser) parseOrdinalDayList() ([]DayOfMonthSpec, *Error) {
	var specs []DayOfMonthSpec
	for {
		first, err := p.expect(tokOrdinalNumber, "an ordinal day number")
		if err != nil {
			return nil, err
		}
		if p.at(tokTo) {
			p.next()
			second, err := p.expect(tokOrdinalNumber, "an ordinal day number")
			if err != nil {
				return nil, err
			}
			if first.Num > second.Num {
				return nil, parseErrorf(p.input, Span{first.Span.Start, second.Span.End}, "invalid day range: %d is greater than %d", first.Num, second.Num)
			}
			specs = append(specs, DayOfMonthRange{Start: first.Num, End: second.Num})
		} else {
			specs = append(specs, DayOfMonthSingle{Day: first.Num})
		}
		if p.at(tokComma) {
			p.next()
			continue
		}
		break
	}
	return specs, nil
}

func (p *parser) parseYearTail(interval int) (ScheduleExpr, *Error) {
	if _, err := p.expect(tokOn, "'on'"); err != nil {
		return nil, err
	}
	target, err := p.parseYearTarget()
	if err != nil {
		return nil, err
	}
	times, err := p.parseAtTimeList()
	if err != nil {
		return nil, err
	}
	return YearRepeat{Interval: interval, Target: target, Times: times}, nil
}

func (p *parser) parseYearTarget() (YearTarget, *Error) {
	switch {
	case p.at(tokMonthName):
		month := p.cur().MName
		p.next()
		day, err := p.parseDayNumber()
		if err != nil {
			return nil, err
		}
		return YearTargetDate{Month: month, Day: day}, nil

	case p.at(tokThe):
		p.next()
		switch {
		case p.at(tokLast):
			p.next()
			switch {
			case p.at(tokWeekday):
				p.next()
				if _, err := p.expect(tokOf, "'of'"); err != nil {
					return nil, err
				}
				month, err := p.expectMonthName()
				if err != nil {
					return nil, err
				}
				return YearTargetLastWeekday{Month: month}, nil
			case p.at(tokWeekdayName):
				wd := p.cur().WName
				p.next()
				if _, err := p.expect(tokOf, "'of'"); err != nil {
					return nil, err
				}
				month, err := p.expectMonthName()
				if err != nil {
					return nil, err
				}
				return YearTargetOrdinalWeekday{Ordinal: Last, Weekday: wd, Month: month}, nil
			default:
				return nil, p.unexpected("'weekday' or a weekday name")
			}

		case p.at(tokOrdinalWord):
			ord := p.cur().Ord
			p.next()
			wd, err := p.expectWeekdayName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokOf, "'of'"); err != nil {
				return nil, err
			}
			month, err := p.expectMonthName()
			if err != nil {
				return nil, err
			}
			return YearTargetOrdinalWeekday{Ordinal: ord, Weekday: wd, Month: month}, nil

		case p.at(tokOrdinalNumber):
			day := p.cur().Num
			p.next()
			if _, err := p.expect(tokOf, "'of'"); err != nil {
				return nil, err
			}
			month, err := p.expectMonthName()
			if err != nil {
				return nil, err
			}
			return YearTargetDayOfMonth{Day: day, Month: month}, nil

		default:
			return nil, p.unexpected("'last', an ordinal word, or an ordinal day number")
		}

	default:
		return nil, p.unexpected("a month name or 'the'")
	}
}

func (p *parser) parseOrdinalRepeatTop() (ScheduleExpr, *Error) {
	ord, err := p.parseOrdinalWordOrLast()
	if err != nil {
		return nil, err
	}
	wd, err := p.expectWeekdayName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokOf, "'of'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEvery, "'every'"); err != nil {
		return nil, err
	}
	interval := 1
	if p.at(tokNumber) {
		interval = p.cur().Num
		if interval < 1 {
			return nil, parseErrorf(p.input, p.cur().Span, "repeat interval must be at least 1")
		}
		p.next()
	}
	if p.at(tokMonths) {
		p.next()
	} else if _, err := p.expect(tokMonth, "'month'"); err != nil {
		return nil, err
	}
	times, err := p.parseAtTimeList()
	if err != nil {
		return nil, err
	}
	return OrdinalRepeat{Interval: interval, Ordinal: ord, Day: wd, Times: times}, nil
}

func (p *parser) parseOrdinalWordOrLast() (OrdinalPosition, *Error) {
	if p.at(tokLast) {
		p.next()
		return Last, nil
	}
	if p.at(tokOrdinalWord) {
		ord := p.cur().Ord
		p.next()
		return ord, nil
	}
	return 0, p.unexpected("an ordinal word or 'last'")
}

// --- single date ("on ...") ---

func (p *parser) parseSingleDate() (ScheduleExpr, *Error) {
	date, err := p.parseDateTarget()
	if err != nil {
		return nil, err
	}
	times, err := p.parseAtTimeList()
	if err != nil {
		return nil, err
	}
	return SingleDate{Date: date, Times: times}, nil
}

func (p *parser) parseDateTarget() (DateSpec, *Error) {
	switch {
	case p.at(tokIsoDate):
		d, err := p.parseIsoDateToken()
		if err != nil {
			return nil, err
		}
		return DateSpecISO{Date: d}, nil
	case p.at(tokMonthName):
		month := p.cur().MName
		p.next()
		day, err := p.parseDayNumber()
		if err != nil {
			return nil, err
		}
		return DateSpecNamed{Month: month, Day: day}, nil
	default:
		return nil, p.unexpected("an ISO date or a month name")
	}
}

// --- shared leaf productions ---

func (p *parser) parseDayNumber() (int, *Error) {
	if p.at(tokNumber) || p.at(tokOrdinalNumber) {
		n := p.cur().Num
		p.next()
		return n, nil
	}
	return 0, p.unexpected("a day number")
}

func (p *parser) parseDayNameList() ([]Weekday, *Error) {
	var days []Weekday
	for {
		wd, err := p.expectWeekdayName()
		if err != nil {
			return nil, err
		}
		days = append(days, wd)
		if p.at(tokComma) {
			p.next()
			continue
		}
		break
	}
	return days, nil
}

func (p *parser) expectWeekdayName() (Weekday, *Error) {
	if !p.at(tokWeekdayName) {
		return 0, p.unexpected("a weekday name")
	}
	wd := p.cur().WName
	p.next()
	return wd, nil
}

func (p *parser) expectMonthName() (MonthName, *Error) {
	if !p.at(tokMonthName) {
		return 0, p.unexpected("a month name")
	}
	m := p.cur().MName
	p.next()
	return m, nil
}

func (p *parser) parseAtTimeList() ([]TimeOfDay, *Error) {
	if _, err := p.expect(tokAt, "'at'"); err != nil {
		return nil, err
	}
	return p.parseTimeList()
}

func (p *parser) parseTimeList() ([]TimeOfDay, *Error) {
	var times []TimeOfDay
	for {
		t, err := p.parseTime()
		if err != nil {
			return nil, err
		}
		times = append(times, t)
		if p.at(tokComma) {
			p.next()
			continue
		}
		break
	}
	return times, nil
}

func (p *parser) parseTime() (TimeOfDay, *Error) {
	t, err := p.expect(tokTime, "a time (HH:MM)")
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: t.Hour, Minute: t.Min}, nil
}

func (p *parser) parseIsoDateToken() (civilDate, *Error) {
	t := p.cur()
	var y, m, d int
	if _, err := fmt.Sscanf(t.Text, "%04d-%02d-%02d", &y, &m, &d); err != nil {
		return civilDate{}, parseErrorf(p.input, t.Span, "malformed ISO date %q", t.Text)
	}
	date, ok := newCivilDate(y, m, d)
	if !ok {
		return civilDate{}, parseErrorf(p.input, t.Span, "invalid calendar date %q", t.Text)
	}
	p.next()
	return date, nil
}

// --- trailing clauses ---

const (
	stageNone = iota
	stageExcept
	stageUntil
	stageStarting
	stageDuring
	stageIn
)

func (p *parser) parseTrailingClauses(s *Schedule) *Error {
	stage := stageNone
	for {
		switch {
		case p.at(tokExcept):
			if stage >= stageExcept {
				return p.unexpected("end of input (except already given, or out of order)")
			}
			excs, err := p.parseExceptClause()
			if err != nil {
				return err
			}
			s.Except = excs
			stage = stageExcept

		case p.at(tokUntil):
			if stage >= stageUntil {
				return p.unexpected("end of input (until already given, or out of order)")
			}
			until, err := p.parseUntilClause()
			if err != nil {
				return err
			}
			s.Until = until
			stage = stageUntil

		case p.at(tokStarting):
			if stage >= stageStarting {
				return p.unexpected("end of input (starting already given, or out of order)")
			}
			d, err := p.parseStartingClause()
			if err != nil {
				return err
			}
			s.Anchor = &d
			stage = stageStarting

		case p.at(tokDuring):
			if stage >= stageDuring {
				return p.unexpected("end of input (during already given, or out of order)")
			}
			months, err := p.parseDuringClause()
			if err != nil {
				return err
			}
			s.During = months
			stage = stageDuring

		case p.at(tokIn):
			if stage >= stageIn {
				return p.unexpected("end of input (in already given, or out of order)")
			}
			tz, err := p.parseInClause()
			if err != nil {
				return err
			}
			s.Timezone = tz
			stage = stageIn

		case p.at(tokEOF):
			return nil

		default:
			return p.unexpected("'except', 'until', 'starting', 'during', 'in', or end of input")
		}
	}
}

func (p *parser) parseExceptClause() ([]Exception, *Error) {
	if _, err := p.expect(tokExcept, "'except'"); err != nil {
		return nil, err
	}
	var excs []Exception
	for {
		switch {
		case p.at(tokIsoDate):
			d, err := p.parseIsoDateToken()
			if err != nil {
				return nil, err
			}
			excs = append(excs, ExceptionISO{Date: d})
		case p.at(tokMonthName):
			month := p.cur().MName
			p.next()
			day, err := p.parseDayNumber()
			if err != nil {
				return nil, err
			}
			excs = append(excs, ExceptionNamed{Month: month, Day: day})
		default:
			return nil, p.unexpected("an ISO date or a month name")
		}
		if p.at(tokComma) {
			p.next()
			continue
		}
		break
	}
	return excs, nil
}

func (p *parser) parseUntilClause() (UntilSpec, *Error) {
	if _, err := p.expect(tokUntil, "'until'"); err != nil {
		return nil, err
	}
	switch {
	case p.at(tokIsoDate):
		d, err := p.parseIsoDateToken()
		if err != nil {
			return nil, err
		}
		return UntilSpecISO{Date: d}, nil
	case p.at(tokMonthName):
		month := p.cur().MName
		p.next()
		day, err := p.parseDayNumber()
		if err != nil {
			return nil, err
		}
		return UntilSpecNamed{Month: month, Day: day}, nil
	default:
		return nil, p.unexpected("an ISO date or a month name")
	}
}

func (p *parser) parseStartingClause() (civilDate, *Error) {
	if _, err := p.expect(tokStarting, "'starting'"); err != nil {
		return civilDate{}, err
	}
	if !p.at(tokIsoDate) {
		return civilDate{}, p.unexpected("an ISO date")
	}
	return p.parseIsoDateToken()
}

func (p *parser) parseDuringClause() ([]MonthName, *Error) {
	if _, err := p.expect(tokDuring, "'during'"); err != nil {
		return nil, err
	}
	var months []MonthName
	for {
		m, err := p.expectMonthName()
		if err != nil {
			return nil, err
		}
		months = append(months, m)
		if p.at(tokComma) {
			p.next()
			continue
		}
		break
	}
	return months, nil
}

func (p *parser) parseInClause() (string, *Error) {
	if _, err := p.expect(tokIn, "'in'"); err != nil {
		return "", err
	}
	t, err := p.expect(tokTimezone, "a timezone name")
	if err != nil {
		return "", err
	}
	return t.Text, nil
}
