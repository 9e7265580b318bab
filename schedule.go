// schedule.go - the public facade collecting every Schedule-level operation
// behind a small, cohesive method set. Parsing lives in parser.go,
// rendering in display.go, the cron bridge in cron.go, and evaluation in
// eval.go; this file only wires them together the way the teacher's own
// cron.go and scheduler.go expose their entry points as short top-level
// methods on a central type.

package hron

// Validate reports whether text parses as a well-formed schedule
// expression, without surfacing the parse error itself.
func Validate(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// ToCron renders s as a 5-field cron string, or an error naming the
// feature cron cannot express.
func (s Schedule) ToCron() (string, error) {
	return ToCron(s)
}

// Timezone() as a method is unavailable because Schedule already exports a
// Timezone field of the same name (Go forbids a field and method sharing a
// selector); callers read s.Timezone directly, with "" meaning no explicit
// zone, matching HasTimezone in ast.go.
