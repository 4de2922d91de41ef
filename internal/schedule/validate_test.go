package schedule_test

import (
	"strings"
	"testing"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
)

func slot(activity, start string, duration int) model.TimeSlot {
	return model.TimeSlot{Activity: activity, Time: start, Duration: duration, Category: "Work"}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name       string
		schedule   model.Schedule
		wantErrors int
		wantMatch  string
	}{
		{
			name:       "Empty schedule",
			schedule:   model.Schedule{},
			wantErrors: 1,
			wantMatch:  "no time slots",
		},
		{
			name: "Valid schedule",
			schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				slot("Deep work", "9:00 AM", 90),
				slot("Lunch", "12:00 PM", 45),
			}},
			wantErrors: 0,
		},
		{
			name: "Missing activity",
			schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				slot("", "9:00 AM", 60),
			}},
			wantErrors: 1,
			wantMatch:  "activity is required",
		},
		{
			name: "Missing time",
			schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				slot("Deep work", "", 60),
			}},
			wantErrors: 1,
			wantMatch:  "time is required",
		},
		{
			name: "Non-positive duration",
			schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				slot("Deep work", "9:00 AM", 0),
			}},
			wantErrors: 1,
			wantMatch:  "duration must be positive",
		},
		{
			name: "Duration exceeds sanity bound",
			schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				slot("Marathon", "6:00 AM", 10*60),
			}},
			wantErrors: 1,
			wantMatch:  "exceeds",
		},
		{
			name: "Identical start times report exactly one overlap",
			schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				slot("Deep work", "9:00 AM", 60),
				slot("Meeting", "9:00 AM", 30),
			}},
			wantErrors: 1,
			wantMatch:  "overlaps",
		},
		{
			name: "Long slot overlaps a later non-adjacent slot",
			schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				slot("Workshop", "9:00 AM", 240), // ends 1:00 PM
				slot("Standup", "9:30 AM", 15),   // ends 9:45 AM
				slot("Review", "10:30 AM", 30),
			}},
			wantErrors: 2, // workshop/standup and workshop/review; standup/review are disjoint
		},
		{
			name: "Back to back is not an overlap",
			schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				slot("Deep work", "9:00 AM", 60),
				slot("Meeting", "10:00 AM", 30),
			}},
			wantErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := schedule.ValidateSchedule(tt.schedule)
			if len(errs) != tt.wantErrors {
				t.Fatalf("ValidateSchedule returned %d errors %v, want %d", len(errs), errs, tt.wantErrors)
			}
			if tt.wantMatch != "" && !strings.Contains(strings.Join(errs, "; "), tt.wantMatch) {
				t.Errorf("errors %v do not mention %q", errs, tt.wantMatch)
			}
		})
	}
}

func TestOptimizeSchedule(t *testing.T) {
	in := model.Schedule{TimeSlots: []model.TimeSlot{
		slot("Meeting", "9:00 AM", 30),
		slot("Deep work", "9:00 AM", 60),
	}}

	out, adjusted := schedule.OptimizeSchedule(in, 15)

	if adjusted != 1 {
		t.Fatalf("adjusted = %d, want 1", adjusted)
	}
	// First slot keeps its start; the second is pushed to first end + buffer.
	if out.TimeSlots[0].Time != "9:00 AM" {
		t.Errorf("first slot moved to %q", out.TimeSlots[0].Time)
	}
	if out.TimeSlots[1].Time != "9:45 AM" {
		t.Errorf("second slot start = %q, want 9:45 AM", out.TimeSlots[1].Time)
	}
	// Input schedule is untouched.
	if in.TimeSlots[1].Time != "9:00 AM" {
		t.Errorf("input schedule mutated: %q", in.TimeSlots[1].Time)
	}
}

func TestOptimizeScheduleSortsByStart(t *testing.T) {
	in := model.Schedule{TimeSlots: []model.TimeSlot{
		slot("Evening review", "8:00 PM", 30),
		slot("Breakfast", "7:30 AM", 30),
		slot("Deep work", "9:00 AM", 90),
	}}

	out, adjusted := schedule.OptimizeSchedule(in, 15)

	if adjusted != 0 {
		t.Fatalf("adjusted = %d, want 0 for a conflict-free schedule", adjusted)
	}
	wantOrder := []string{"Breakfast", "Deep work", "Evening review"}
	for i, want := range wantOrder {
		if out.TimeSlots[i].Activity != want {
			t.Errorf("slot %d = %q, want %q", i, out.TimeSlots[i].Activity, want)
		}
	}
}

func TestOptimizeScheduleChainShift(t *testing.T) {
	in := model.Schedule{TimeSlots: []model.TimeSlot{
		slot("A", "9:00 AM", 60),
		slot("B", "9:30 AM", 60),
		slot("C", "10:00 AM", 30),
	}}

	out, adjusted := schedule.OptimizeSchedule(in, 15)

	if adjusted != 2 {
		t.Fatalf("adjusted = %d, want 2", adjusted)
	}
	// B pushed to 10:15, ends 11:15; C pushed to 11:30.
	if out.TimeSlots[1].Time != "10:15 AM" {
		t.Errorf("B start = %q, want 10:15 AM", out.TimeSlots[1].Time)
	}
	if out.TimeSlots[2].Time != "11:30 AM" {
		t.Errorf("C start = %q, want 11:30 AM", out.TimeSlots[2].Time)
	}
}
