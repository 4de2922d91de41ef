package schedule_test

import (
	"testing"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
	"atomic-scheduler/pkg/timeutil"
)

func taskAt(id string, start, duration int) model.Task {
	return model.Task{
		ID:       id,
		Name:     "task-" + id,
		Start:    start,
		Duration: duration,
		Time:     timeutil.FormatStartDuration(start, duration),
	}
}

func TestHasConflict(t *testing.T) {
	existing := []model.Task{
		taskAt("t1", 9*60, 60),   // 9:00-10:00
		taskAt("t2", 14*60, 120), // 2:00-4:00 PM
	}

	tests := []struct {
		name      string
		candidate timeutil.TimeRange
		excludeID string
		want      bool
	}{
		{
			name:      "Free slot",
			candidate: timeutil.TimeRange{Start: 11 * 60, End: 12 * 60},
			want:      false,
		},
		{
			name:      "Overlaps first task",
			candidate: timeutil.TimeRange{Start: 9*60 + 30, End: 10*60 + 30},
			want:      true,
		},
		{
			name:      "Boundary touch is not a conflict",
			candidate: timeutil.TimeRange{Start: 10 * 60, End: 11 * 60},
			want:      false,
		},
		{
			name:      "Contained in second task",
			candidate: timeutil.TimeRange{Start: 15 * 60, End: 15*60 + 30},
			want:      true,
		},
		{
			name:      "Excluded task does not conflict with itself",
			candidate: timeutil.TimeRange{Start: 9 * 60, End: 10 * 60},
			excludeID: "t1",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.HasConflict(tt.candidate, existing, tt.excludeID)
			if got != tt.want {
				t.Errorf("HasConflict(%+v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestHasConflictUnreadableRangeFailsSafe(t *testing.T) {
	existing := []model.Task{
		{ID: "broken", Time: "sometime later"}, // no canonical minutes, unparseable string
	}
	candidate := timeutil.TimeRange{Start: 9 * 60, End: 10 * 60}

	if !schedule.HasConflict(candidate, existing, "") {
		t.Error("expected unreadable stored range to be treated as a conflict")
	}
}

func TestRangeOfPrefersCanonicalMinutes(t *testing.T) {
	// Canonical Start/Duration wins even when the display string disagrees.
	task := model.Task{Start: 9 * 60, Duration: 60, Time: "2:00 PM-3:00 PM"}

	r, ok := schedule.RangeOf(task)
	if !ok {
		t.Fatal("expected a readable range")
	}
	want := timeutil.TimeRange{Start: 9 * 60, End: 10 * 60}
	if r != want {
		t.Errorf("RangeOf = %+v, want %+v", r, want)
	}
}

func TestRangeOfParsesLegacyString(t *testing.T) {
	task := model.Task{Time: "9:00-10:00 AM"}

	r, ok := schedule.RangeOf(task)
	if !ok {
		t.Fatal("expected a readable range")
	}
	want := timeutil.TimeRange{Start: 9 * 60, End: 10 * 60}
	if r != want {
		t.Errorf("RangeOf = %+v, want %+v", r, want)
	}
}
