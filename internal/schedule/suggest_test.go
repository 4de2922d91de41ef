package schedule_test

import (
	"testing"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
	"atomic-scheduler/pkg/timeutil"
)

func TestSuggestSlotsMorning(t *testing.T) {
	existing := []model.Task{taskAt("t1", 9*60, 60)} // 9:00-10:00

	got := schedule.SuggestSlots(30, timeutil.BlockMorning, existing, 15, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}

	morning, _ := timeutil.BlockRange(timeutil.BlockMorning)
	for i, c := range got {
		if c.Start < morning.Start || c.End > morning.End {
			t.Errorf("candidate %d %+v falls outside the morning block", i, c)
		}
		if c.Duration() != 30 {
			t.Errorf("candidate %d duration = %d, want 30", i, c.Duration())
		}
		if schedule.HasConflict(c, existing, "") {
			t.Errorf("candidate %d %+v conflicts with existing tasks", i, c)
		}
		if i > 0 && got[i-1].Start >= c.Start {
			t.Errorf("candidates not in ascending start order: %+v then %+v", got[i-1], c)
		}
	}

	// Greedy from block start: the first opening is 6:00.
	if got[0].Start != 6*60 {
		t.Errorf("first candidate start = %d, want %d", got[0].Start, 6*60)
	}
}

func TestSuggestSlotsFallsBackToOtherBlocks(t *testing.T) {
	// Fill the whole morning so the preferred block has no openings.
	existing := []model.Task{taskAt("t1", 6*60, 6*60)}

	got := schedule.SuggestSlots(60, timeutil.BlockMorning, existing, 15, 3)

	if len(got) == 0 {
		t.Fatal("expected fallback candidates from other blocks")
	}
	afternoon, _ := timeutil.BlockRange(timeutil.BlockAfternoon)
	if got[0].Start != afternoon.Start {
		t.Errorf("first fallback candidate start = %d, want afternoon start %d", got[0].Start, afternoon.Start)
	}
}

func TestSuggestSlotsNoBlockScansAll(t *testing.T) {
	got := schedule.SuggestSlots(45, "", nil, 15, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	morning, _ := timeutil.BlockRange(timeutil.BlockMorning)
	if got[0].Start != morning.Start {
		t.Errorf("scan should begin at morning start, got %d", got[0].Start)
	}
}

func TestSuggestSlotsRespectsBlockEnd(t *testing.T) {
	// Evening is 18:00-23:00; a 4h candidate only fits starting 18:00-19:00.
	got := schedule.SuggestSlots(4*60, timeutil.BlockEvening, nil, 15, 10)

	evening, _ := timeutil.BlockRange(timeutil.BlockEvening)
	for _, c := range got {
		if c.End > evening.End {
			t.Errorf("candidate %+v exceeds evening block end %d", c, evening.End)
		}
	}
}

func TestSuggestSlotsInvalidDuration(t *testing.T) {
	if got := schedule.SuggestSlots(0, timeutil.BlockMorning, nil, 15, 3); got != nil {
		t.Errorf("expected nil for non-positive duration, got %+v", got)
	}
}
