// Package hron implements hron, a human-readable cron-superset scheduling
// expression language: a lexer and recursive-descent parser for phrases
// like "every weekday at 09:00 except dec 25 in America/New_York", a
// canonical pretty-printer, a timezone-aware evaluator (next/previous
// occurrence search, point-in-time matching, lazy forward iteration), and
// a bidirectional bridge to and from standard 5-field cron syntax
// (including the @ shortcuts and the L/LW/#N/NL cron extensions; cron's
// nearest-weekday W day-of-month specifier is refused).
//
// The grammar, AST, and evaluator are built around seven closed schedule
// shapes (IntervalRepeat, DayRepeat, WeekRepeat, MonthRepeat,
// OrdinalRepeat, SingleDate, YearRepeat), each carrying its own interval,
// target, and time-of-day list, plus a uniform set of modifiers shared by
// every shape: except, until, starting (anchor), during, and an explicit
// IANA timezone.
package hron
