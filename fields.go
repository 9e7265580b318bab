// fields.go - parsing of individual 5-field cron fields, used only by the
// cron bridge (cron.go) to interpret FromCron's day-of-month, month and
// day-of-week fields (minute and hour are read by cron.go's own helpers). Grounded on the teacher's Field/FieldParser machinery in its own
// fields.go: the same step/range/single-value dispatch and named-value
// lookup tables for month and weekday names. L/LW/W/#/NL, the cron
// extensions ast.go's OrdinalRepeat/MonthTarget/DayFilter shapes decode
// to, are recognized and routed to those shapes directly by FromCron
// (cron.go) before a field ever reaches this parser, so unlike the
// teacher's own fields.go this one only ever parses plain numeric or
// named field values.

package hron

import (
	"strconv"
	"strings"
)

type cronFieldKind int

const (
	cronFieldMinute cronFieldKind = iota
	cronFieldHour
	cronFieldDayOfMonth
	cronFieldMonth
	cronFieldDayOfWeek
)

type cronFieldBound struct{ min, max int }

var cronFieldBounds = map[cronFieldKind]cronFieldBound{
	cronFieldMinute:     {0, 59},
	cronFieldHour:       {0, 23},
	cronFieldDayOfMonth: {1, 31},
	cronFieldMonth:      {1, 12},
	cronFieldDayOfWeek:  {0, 6},
}

// cronField holds every concrete value a cron field expands to.
type cronField struct {
	Kind   cronFieldKind
	Values map[int]bool
	Raw    string
}

func newCronField(kind cronFieldKind) *cronField {
	return &cronField{Kind: kind, Values: make(map[int]bool)}
}

func (f *cronField) Contains(v int) bool { return f.Values[v] }

func (f *cronField) All() []int {
	b := cronFieldBounds[f.Kind]
	out := make([]int, 0, len(f.Values))
	for i := b.min; i <= b.max; i++ {
		if f.Values[i] {
			out = append(out, i)
		}
	}
	return out
}

func (f *cronField) IsAll() bool {
	b := cronFieldBounds[f.Kind]
	return len(f.Values) == b.max-b.min+1
}

type cronFieldParser struct {
	kind     cronFieldKind
	min, max int
}

func newCronFieldParser(kind cronFieldKind) *cronFieldParser {
	b := cronFieldBounds[kind]
	return &cronFieldParser{kind: kind, min: b.min, max: b.max}
}

func (p *cronFieldParser) Parse(expr string) (*cronField, error) {
	field := newCronField(p.kind)
	field.Raw = expr

	if expr == "" {
		return nil, cronErrorf("cron field cannot be empty")
	}
	if expr == "*" || expr == "?" {
		p.addRange(field, p.min, p.max, 1)
		return field, nil
	}

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := p.parsePart(field, part); err != nil {
			return nil, err
		}
	}
	if len(field.Values) == 0 {
		return nil, cronErrorf("cron field %q: no valid values found", expr)
	}
	return field, nil
}

// parsePart dispatches a single comma-separated piece of a field to a
// step, range, or plain-value parse. L/LW/W/#/NL special-character forms
// are intercepted by FromCron (cron.go) before a field ever reaches here,
// so this parser only ever sees plain numeric or named values.
func (p *cronFieldParser) parsePart(field *cronField, part string) error {
	if strings.Contains(part, "/") {
		return p.parseStep(field, part)
	}
	if strings.Contains(part, "-") {
		return p.parseRange(field, part)
	}
	return p.parseSingle(field, part)
}

func (p *cronFieldParser) parseSingle(field *cronField, part string) error {
	v, err := p.parseValue(part)
	if err != nil {
		return err
	}
	if err := p.validate(v, part); err != nil {
		return err
	}
	field.Values[v] = true
	return nil
}

func (p *cronFieldParser) parseRange(field *cronField, part string) error {
	rp := strings.SplitN(part, "-", 2)
	if len(rp) != 2 {
		return cronErrorf("invalid range %q", part)
	}
	start, err := p.parseValue(rp[0])
	if err != nil {
		return err
	}
	end, err := p.parseValue(rp[1])
	if err != nil {
		return err
	}
	if err := p.validate(start, rp[0]); err != nil {
		return err
	}
	if err := p.validate(end, rp[1]); err != nil {
		return err
	}
	if start > end {
		return cronErrorf("invalid range: start (%d) greater than end (%d)", start, end)
	}
	p.addRange(field, start, end, 1)
	return nil
}

func (p *cronFieldParser) parseStep(field *cronField, part string) error {
	sp := strings.SplitN(part, "/", 2)
	if len(sp) != 2 {
		return cronErrorf("invalid step %q", part)
	}
	step, err := strconv.Atoi(sp[1])
	if err != nil || step <= 0 {
		return cronErrorf("invalid step value %q (must be a positive integer)", sp[1])
	}
	base := sp[0]
	if base == "*" {
		p.addRange(field, p.min, p.max, step)
		return nil
	}
	if strings.Contains(base, "-") {
		rp := strings.SplitN(base, "-", 2)
		start, err := p.parseValue(rp[0])
		if err != nil {
			return err
		}
		end, err := p.parseValue(rp[1])
		if err != nil {
			return err
		}
		if err := p.validate(start, rp[0]); err != nil {
			return err
		}
		if err := p.validate(end, rp[1]); err != nil {
			return err
		}
		if start > end {
			return cronErrorf("invalid range: start (%d) greater than end (%d)", start, end)
		}
		p.addRange(field, start, end, step)
		return nil
	}
	start, err := p.parseValue(base)
	if err != nil {
		return err
	}
	if err := p.validate(start, base); err != nil {
		return err
	}
	p.addRange(field, start, p.max, step)
	return nil
}

func (p *cronFieldParser) parseValue(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if p.kind == cronFieldMonth {
		if v, ok := parseMonthName(strings.ToLower(s)); ok {
			return v.Number(), nil
		}
	}
	if p.kind == cronFieldDayOfWeek {
		if v, ok := cronDayNames[s]; ok {
			return v, nil
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, cronErrorf("invalid value %q", s)
	}
	return v, nil
}

func (p *cronFieldParser) validate(v int, original string) error {
	if v < p.min || v > p.max {
		return cronErrorf("value %q out of range (%d-%d)", original, p.min, p.max)
	}
	return nil
}

func (p *cronFieldParser) addRange(field *cronField, start, end, step int) {
	for i := start; i <= end; i += step {
		field.Values[i] = true
	}
}

var cronDayNames = map[string]int{
	"SUN": 0, "SUNDAY": 0,
	"MON": 1, "MONDAY": 1,
	"TUE": 2, "TUESDAY": 2,
	"WED": 3, "WEDNESDAY": 3,
	"THU": 4, "THURSDAY": 4,
	"FRI": 5, "FRIDAY": 5,
	"SAT": 6, "SATURDAY": 6,
}
