package schedule

import (
	"sort"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/pkg/timeutil"
)

// DefaultBufferMinutes is the gap inserted between shifted slots.
const DefaultBufferMinutes = 15

// OptimizeSchedule sorts slots by start time and greedily pushes any slot
// whose start precedes the prior slot's end to (prior end + buffer).
// Slots keep their durations; only starts move. Returns the adjusted
// schedule and the number of slots that were shifted.
func OptimizeSchedule(s model.Schedule, buffer int) (model.Schedule, int) {
	if buffer < 0 {
		buffer = DefaultBufferMinutes
	}
	if len(s.TimeSlots) == 0 {
		return s, 0
	}

	type placed struct {
		slot  model.TimeSlot
		start int
	}
	placements := make([]placed, len(s.TimeSlots))
	for i, slot := range s.TimeSlots {
		start, _ := timeutil.ParseClock(slot.Time, timeutil.PeriodUnknown)
		placements[i] = placed{slot: slot, start: start}
	}
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].start < placements[j].start
	})

	adjusted := 0
	prevEnd := placements[0].start + placements[0].slot.Duration
	for i := 1; i < len(placements); i++ {
		if placements[i].start < prevEnd {
			placements[i].start = prevEnd + buffer
			placements[i].slot.Time = timeutil.FormatClock(placements[i].start)
			adjusted++
		}
		prevEnd = placements[i].start + placements[i].slot.Duration
	}

	out := s
	out.TimeSlots = make([]model.TimeSlot, len(placements))
	for i, p := range placements {
		out.TimeSlots[i] = p.slot
	}
	return out, adjusted
}
