package schedule

import (
	"fmt"
	"sort"
	"strings"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/pkg/timeutil"
)

// MaxSlotDuration is the sanity bound on a single slot (8 hours).
const MaxSlotDuration = 8 * 60

// ValidateSchedule checks a schedule for structural problems: empty slot
// list, missing activity or time, non-positive or oversized durations,
// and pairwise overlaps between slots when sorted by start time.
// Overlaps are errors, not warnings.
func ValidateSchedule(s model.Schedule) []string {
	if len(s.TimeSlots) == 0 {
		return []string{ErrEmptySchedule.Error()}
	}

	var errs []string
	for i, slot := range s.TimeSlots {
		if strings.TrimSpace(slot.Activity) == "" {
			errs = append(errs, fmt.Sprintf("slot %d: activity is required", i+1))
		}
		if strings.TrimSpace(slot.Time) == "" {
			errs = append(errs, fmt.Sprintf("slot %d: time is required", i+1))
		}
		if slot.Duration <= 0 {
			errs = append(errs, fmt.Sprintf("slot %d (%s): duration must be positive", i+1, slot.Activity))
		} else if slot.Duration > MaxSlotDuration {
			errs = append(errs, fmt.Sprintf("slot %d (%s): duration %d exceeds %d minutes", i+1, slot.Activity, slot.Duration, MaxSlotDuration))
		}
	}

	// Pairwise overlap check on slots sorted by start time. Slots whose
	// time cannot be parsed degrade to noon; they still participate so
	// identical malformed times collide.
	type placed struct {
		slot model.TimeSlot
		r    timeutil.TimeRange
	}
	placements := make([]placed, 0, len(s.TimeSlots))
	for _, slot := range s.TimeSlots {
		if strings.TrimSpace(slot.Time) == "" || slot.Duration <= 0 {
			continue
		}
		start, _ := timeutil.ParseClock(slot.Time, timeutil.PeriodUnknown)
		placements = append(placements, placed{
			slot: slot,
			r:    timeutil.TimeRange{Start: start, End: start + slot.Duration},
		})
	}
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].r.Start < placements[j].r.Start
	})

	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if placements[i].r.Overlaps(placements[j].r) {
				errs = append(errs, fmt.Sprintf("%q overlaps %q", placements[i].slot.Activity, placements[j].slot.Activity))
			}
		}
	}

	return errs
}
