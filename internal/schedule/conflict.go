package schedule

import (
	"atomic-scheduler/internal/model"
	"atomic-scheduler/pkg/timeutil"
)

// RangeOf returns the normalized time range of a task. Tasks created by
// this service carry canonical Start/Duration minutes; rows holding only
// a display string are parsed. ok is false when neither yields a range.
func RangeOf(t model.Task) (timeutil.TimeRange, bool) {
	if t.Duration > 0 {
		return timeutil.TimeRange{Start: t.Start, End: t.Start + t.Duration}, true
	}
	r, err := timeutil.ParseRange(t.Time)
	if err != nil {
		return timeutil.TimeRange{}, false
	}
	return r, true
}

// HasConflict reports whether candidate overlaps any of the existing
// tasks, excluding the task being edited (excludeID may be empty).
// A task whose stored range cannot be read is treated as conflicting:
// better to refuse a placement than silently double-book.
func HasConflict(candidate timeutil.TimeRange, existing []model.Task, excludeID string) bool {
	for _, t := range existing {
		if excludeID != "" && t.ID == excludeID {
			continue
		}
		r, ok := RangeOf(t)
		if !ok {
			return true
		}
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}
