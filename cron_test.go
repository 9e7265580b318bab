package hron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCron_ConcreteScenarios(t *testing.T) {
	sch := mustParse(t, "every weekday at 09:00")
	got, err := sch.ToCron()
	require.NoError(t, err)
	assert.Equal(t, "0 9 * * 1-5", got)
}

func TestFromCron_ConcreteScenarios(t *testing.T) {
	tests := []struct {
		cron string
		want string
	}{
		{"0 9 1-5 * *", "every month on the 1st to 5th at 09:00"},
		{"@daily", "every day at 00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.cron, func(t *testing.T) {
			sch, err := FromCron(tt.cron)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sch.String())
		})
	}
}

func TestToCron_RefusesInexpressible(t *testing.T) {
	tests := []string{
		"every day at 09:00 except dec 25",
		"every day at 09:00 until 2026-12-31",
		"every day at 09:00 during jun, jul",
		"every month on the last day at 09:00",
		"every 7 min from 09:00 to 17:00",
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			sch := mustParse(t, expr)
			_, err := sch.ToCron()
			assert.Error(t, err, "ToCron(%q) should be refused", expr)
		})
	}
}

// TestCron_RoundTrip covers spec property 5: for schedules where to_cron
// succeeds, to_cron(from_cron(to_cron(S))) == to_cron(S).
func TestCron_RoundTrip(t *testing.T) {
	exprs := []string{
		"every day at 09:00",
		"every weekday at 09:00",
		"every weekend at 09:00",
		"every monday, wednesday, friday at 08:30",
		"every month on the 1st, 15th at 12:00",
		"every 15 min from 00:00 to 23:59",
		"every 2 hours from 00:00 to 23:59",
	}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			sch := mustParse(t, expr)
			first, err := sch.ToCron()
			require.NoError(t, err)
			reparsed, err := FromCron(first)
			require.NoError(t, err)
			second, err := reparsed.ToCron()
			require.NoError(t, err)
			assert.Equal(t, first, second, "round-trip mismatch for %q", expr)
		})
	}
}

func TestFromCron_Extensions(t *testing.T) {
	tests := []struct {
		name string
		cron string
	}{
		{"last day of month", "0 17 L * *"},
		{"last weekday of month", "0 17 LW * *"},
		{"nth weekday occurrence", "0 9 * * 1#2"},
		{"last friday of month", "0 9 * * 5L"},
		{"stepped minutes", "*/15 * * * *"},
		{"stepped hours", "0 */2 * * *"},
		{"month restriction", "0 9 * 6,7 *"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromCron(tt.cron)
			require.NoError(t, err)
		})
	}
}

func TestFromCron_RefusesNearestWeekdaySpecifier(t *testing.T) {
	_, err := FromCron("0 9 15W * *")
	assert.Error(t, err, "FromCron with a 'W' day-of-month specifier should be refused")
}

func TestExplainCron_AdvisoryForUnevenStep(t *testing.T) {
	out, err := ExplainCron("*/7 * * * *")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "0, 7, 14, 21, 28, 35, 42, 49, 56")
}

func TestExplainCron_Daily(t *testing.T) {
	out, err := ExplainCron("@daily")
	require.NoError(t, err)
	assert.Equal(t, "every day at 00:00", out)
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("every day at 09:00"))
	assert.False(t, Validate("not an expression"))
}
