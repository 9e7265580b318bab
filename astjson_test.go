package hron

import "testing"

func TestScheduleAST_Shape(t *testing.T) {
	sch := mustParse(t, "every weekday at 09:00 except dec 25 in UTC")
	ast := ScheduleAST(sch)

	if ast["kind"] != "day" {
		t.Errorf("kind = %v, want %q", ast["kind"], "day")
	}
	interval, ok := ast["interval"].(map[string]any)
	if !ok {
		t.Fatalf("interval field has type %T, want map[string]any", ast["interval"])
	}
	if interval["value"] != 1 || interval["unit"] != "days" {
		t.Errorf("interval = %+v, want {value:1 unit:days}", interval)
	}
	except, ok := ast["except"].([]any)
	if !ok || len(except) != 1 {
		t.Fatalf("except = %v, want a single-element slice", ast["except"])
	}
	if ast["timezone"] != "UTC" {
		t.Errorf("timezone = %v, want UTC", ast["timezone"])
	}
	if ast["starting"] != nil {
		t.Errorf("starting = %v, want nil", ast["starting"])
	}
}

func TestScheduleAST_NoTimezoneIsNil(t *testing.T) {
	sch := mustParse(t, "every day at 09:00")
	ast := ScheduleAST(sch)
	if ast["timezone"] != nil {
		t.Errorf("timezone = %v, want nil when no explicit zone was given", ast["timezone"])
	}
}
