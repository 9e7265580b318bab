package main

import "testing"

// A couple of smoke tests, per SPEC_FULL.md's note that cmd/hron is kept
// thin and untested beyond this: the exit-code contract and the basic
// parse-and-print path are the only behaviors worth pinning down here.

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"valid expression", []string{"every day at 09:00"}, 0},
		{"invalid expression", []string{"banana"}, 1},
		{"no expression given", []string{}, 2},
		{"check valid", []string{"--check", "every day at 09:00"}, 0},
		{"to-cron expressible", []string{"--to-cron", "every weekday at 09:00"}, 0},
		{"to-cron inexpressible", []string{"--to-cron", "every month on the last day at 09:00"}, 1},
		{"from-cron", []string{"--from-cron", "@daily"}, 0},
		{"explain", []string{"--explain", "@daily"}, 0},
		{"parse emits ast", []string{"--parse", "every day at 09:00"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
