package schedule

import (
	"atomic-scheduler/internal/model"
	"atomic-scheduler/pkg/timeutil"
)

const (
	// DefaultSuggestionCount is the maximum number of alternatives returned.
	DefaultSuggestionCount = 3

	// DefaultSuggestionStep is the candidate start granularity in minutes.
	DefaultSuggestionStep = 15
)

// SuggestSlots walks candidate start times within the preferred block and
// returns up to count non-conflicting placements of the requested
// duration, earliest first. When the preferred block has no openings the
// remaining blocks are scanned in morning, afternoon, evening order. An
// empty preferred block scans all three. Greedy by construction: first
// fits win, no attempt to minimize fragmentation.
func SuggestSlots(duration int, preferred timeutil.Block, existing []model.Task, step, count int) []timeutil.TimeRange {
	if duration <= 0 {
		return nil
	}
	if step <= 0 {
		step = DefaultSuggestionStep
	}
	if count <= 0 {
		count = DefaultSuggestionCount
	}

	var candidates []timeutil.TimeRange
	for _, block := range scanOrder(preferred) {
		bounds, ok := timeutil.BlockRange(block)
		if !ok {
			continue
		}
		for start := bounds.Start; start+duration <= bounds.End; start += step {
			candidate := timeutil.TimeRange{Start: start, End: start + duration}
			if HasConflict(candidate, existing, "") {
				continue
			}
			candidates = append(candidates, candidate)
			if len(candidates) >= count {
				return candidates
			}
		}
	}
	return candidates
}

// scanOrder returns the preferred block followed by the remaining blocks
// in fixed order.
func scanOrder(preferred timeutil.Block) []timeutil.Block {
	if _, ok := timeutil.BlockRange(preferred); !ok {
		return timeutil.BlockOrder
	}

	order := []timeutil.Block{preferred}
	for _, b := range timeutil.BlockOrder {
		if b != preferred {
			order = append(order, b)
		}
	}
	return order
}
