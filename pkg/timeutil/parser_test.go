package timeutil_test

import (
	"testing"

	"atomic-scheduler/pkg/timeutil"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback timeutil.Period
		want     int
		wantOK   bool
	}{
		{name: "Hour only AM", input: "9 AM", want: 9 * 60, wantOK: true},
		{name: "Hour and minute PM", input: "3:30 PM", want: 15*60 + 30, wantOK: true},
		{name: "Lowercase period", input: "7:15 pm", want: 19*60 + 15, wantOK: true},
		{name: "Midnight", input: "12:00 AM", want: 0, wantOK: true},
		{name: "Noon", input: "12:00 PM", want: 12 * 60, wantOK: true},
		{name: "No period with PM fallback", input: "4:00", fallback: timeutil.PeriodPM, want: 16 * 60, wantOK: true},
		{name: "No period 24h clock", input: "14:30", want: 14*60 + 30, wantOK: true},
		{name: "Leading whitespace", input: "  8:05 AM", want: 8*60 + 5, wantOK: true},
		{name: "Malformed degrades to noon", input: "half past nine", want: timeutil.DefaultMinutes, wantOK: false},
		{name: "Hour out of range", input: "25:00", want: timeutil.DefaultMinutes, wantOK: false},
		{name: "Minute out of range", input: "9:75", want: timeutil.DefaultMinutes, wantOK: false},
		{name: "Empty string", input: "", want: timeutil.DefaultMinutes, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := timeutil.ParseClock(tt.input, tt.fallback)
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if ok != tt.wantOK {
				t.Errorf("ParseClock(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    timeutil.TimeRange
		wantErr bool
	}{
		{
			name:  "Both periods explicit",
			input: "9:00 AM-10:00 AM",
			want:  timeutil.TimeRange{Start: 9 * 60, End: 10 * 60},
		},
		{
			name:  "Left inherits right period",
			input: "9:00-10:00 AM",
			want:  timeutil.TimeRange{Start: 9 * 60, End: 10 * 60},
		},
		{
			name:  "Right inherits left period",
			input: "2:00 PM-3:30",
			want:  timeutil.TimeRange{Start: 14 * 60, End: 15*60 + 30},
		},
		{
			name:  "Spaces around separator",
			input: "6:00 PM - 7:00 PM",
			want:  timeutil.TimeRange{Start: 18 * 60, End: 19 * 60},
		},
		{
			name:  "Wraps past midnight",
			input: "11:00 PM-12:30 AM",
			want:  timeutil.TimeRange{Start: 23 * 60, End: 24*60 + 30},
		},
		{
			name:    "Missing separator",
			input:   "9:00 AM",
			wantErr: true,
		},
		{
			name:    "Malformed side",
			input:   "9:00 AM-banana",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeutil.ParseRange(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRange(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRange(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"9:00 AM-10:00 AM",
		"12:00 PM-1:30 PM",
		"6:15 PM-9:45 PM",
		"12:00 AM-1:00 AM",
	}

	for _, input := range inputs {
		r, err := timeutil.ParseRange(input)
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", input, err)
		}
		formatted := r.Format()
		if formatted != input {
			t.Errorf("round trip of %q produced %q", input, formatted)
		}
	}
}

func TestFormatStartDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		duration int
		want     string
	}{
		{name: "Morning hour", start: 9 * 60, duration: 60, want: "9:00 AM-10:00 AM"},
		{name: "Crosses noon", start: 11*60 + 30, duration: 60, want: "11:30 AM-12:30 PM"},
		{name: "Wraps past midnight", start: 23 * 60, duration: 90, want: "11:00 PM-12:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeutil.FormatStartDuration(tt.start, tt.duration)
			if got != tt.want {
				t.Errorf("FormatStartDuration(%d, %d) = %q, want %q", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b timeutil.TimeRange
		want bool
	}{
		{name: "Disjoint", a: timeutil.TimeRange{Start: 540, End: 600}, b: timeutil.TimeRange{Start: 660, End: 720}, want: false},
		{name: "Boundary touch is not a conflict", a: timeutil.TimeRange{Start: 540, End: 600}, b: timeutil.TimeRange{Start: 600, End: 660}, want: false},
		{name: "Partial overlap", a: timeutil.TimeRange{Start: 540, End: 600}, b: timeutil.TimeRange{Start: 570, End: 630}, want: true},
		{name: "Containment", a: timeutil.TimeRange{Start: 540, End: 720}, b: timeutil.TimeRange{Start: 570, End: 600}, want: true},
		{name: "Identical", a: timeutil.TimeRange{Start: 540, End: 600}, b: timeutil.TimeRange{Start: 540, End: 600}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlockOf(t *testing.T) {
	tests := []struct {
		minutes int
		want    timeutil.Block
	}{
		{minutes: 7 * 60, want: timeutil.BlockMorning},
		{minutes: 12 * 60, want: timeutil.BlockAfternoon},
		{minutes: 20 * 60, want: timeutil.BlockEvening},
		{minutes: 5 * 60, want: timeutil.BlockMorning},
		{minutes: 23*60 + 30, want: timeutil.BlockEvening},
	}

	for _, tt := range tests {
		if got := timeutil.BlockOf(tt.minutes); got != tt.want {
			t.Errorf("BlockOf(%d) = %s, want %s", tt.minutes, got, tt.want)
		}
	}
}
