package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(?i:(am|pm))?$`)

// ParseClock converts a clock string ("9", "9:30", "9:30 PM") to minutes
// since midnight. A time without AM/PM resolves through fallback; with no
// fallback either, the hour is read as a 24-hour clock. Malformed input
// degrades to noon with ok=false rather than failing.
func ParseClock(s string, fallback Period) (int, bool) {
	s = strings.TrimSpace(s)
	matches := clockRe.FindStringSubmatch(s)
	if matches == nil {
		return DefaultMinutes, false
	}

	hour, _ := strconv.Atoi(matches[1])
	minute := 0
	if matches[2] != "" {
		minute, _ = strconv.Atoi(matches[2])
	}
	if hour > 23 || minute > 59 {
		return DefaultMinutes, false
	}

	period := periodOf(matches[3])
	if period == PeriodUnknown {
		period = fallback
	}

	switch period {
	case PeriodAM:
		if hour == 12 {
			hour = 0
		}
	case PeriodPM:
		if hour < 12 {
			hour += 12
		}
	}

	return hour*60 + minute, true
}

// ParseRange converts a range string ("9:00-10:30 AM", "14:00 - 15:00")
// into a TimeRange. The string splits on the first "-"; a side missing
// AM/PM inherits the other side's period. Ranges whose end precedes their
// start are read as wrapping past midnight and normalized by adding 24h
// to the end.
func ParseRange(s string) (TimeRange, error) {
	left, right, found := strings.Cut(s, "-")
	if !found {
		return TimeRange{}, fmt.Errorf("invalid time range %q: missing separator", s)
	}

	leftPeriod := detectPeriod(left)
	rightPeriod := detectPeriod(right)

	start, okStart := ParseClock(left, rightPeriod)
	end, okEnd := ParseClock(right, leftPeriod)
	if !okStart || !okEnd {
		return TimeRange{}, fmt.Errorf("invalid time range %q", s)
	}

	if end < start {
		end += MinutesPerDay
	}
	return TimeRange{Start: start, End: end}, nil
}

// FormatClock renders minutes since midnight as "H:MM AM". Values outside
// one day wrap modulo 24h.
func FormatClock(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay

	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	displayHour := hour
	switch {
	case hour == 0:
		displayHour = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		displayHour = hour - 12
		period = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}

// Format renders the range as "9:00 AM-10:30 AM" for display and storage.
func (r TimeRange) Format() string {
	return FormatClock(r.Start) + "-" + FormatClock(r.End)
}

// FormatStartDuration renders the range beginning at startMinutes and
// lasting durationMinutes.
func FormatStartDuration(startMinutes, durationMinutes int) string {
	return TimeRange{Start: startMinutes, End: startMinutes + durationMinutes}.Format()
}

func periodOf(match string) Period {
	switch strings.ToLower(match) {
	case "am":
		return PeriodAM
	case "pm":
		return PeriodPM
	default:
		return PeriodUnknown
	}
}

func detectPeriod(s string) Period {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "am"):
		return PeriodAM
	case strings.Contains(lower, "pm"):
		return PeriodPM
	default:
		return PeriodUnknown
	}
}
