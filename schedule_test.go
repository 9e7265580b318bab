package hron

import "testing"

func TestValidate_AcceptsAndRejects(t *testing.T) {
	if !Validate("every day at 09:00") {
		t.Error("Validate should accept a well-formed expression")
	}
	if !Validate("every weekday at 09:00 except dec 25 in UTC") {
		t.Error("Validate should accept an expression with modifiers")
	}
	if Validate("") {
		t.Error("Validate should reject an empty string")
	}
	if Validate("every day at 9") {
		t.Error("Validate should reject a malformed time")
	}
}

func TestSchedule_ToCronMethodMatchesToCronFunction(t *testing.T) {
	sch := mustParse(t, "every weekday at 09:00")
	viaMethod, err := sch.ToCron()
	if err != nil {
		t.Fatalf("ToCron method error: %v", err)
	}
	viaFunc, err := ToCron(sch)
	if err != nil {
		t.Fatalf("ToCron function error: %v", err)
	}
	if viaMethod != viaFunc {
		t.Errorf("Schedule.ToCron() = %q, ToCron(sch) = %q, want equal", viaMethod, viaFunc)
	}
}

func TestSchedule_TimezoneFieldDefaultsEmpty(t *testing.T) {
	sch := mustParse(t, "every day at 09:00")
	if sch.Timezone != "" {
		t.Errorf("Timezone = %q, want empty string when no zone was given", sch.Timezone)
	}
}

func TestSchedule_TimezoneFieldSetWhenGiven(t *testing.T) {
	sch := mustParse(t, "every day at 09:00 in America/New_York")
	if sch.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want %q", sch.Timezone, "America/New_York")
	}
}
