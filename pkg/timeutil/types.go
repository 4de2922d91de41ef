package timeutil

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = 1440

// DefaultMinutes is the value malformed clock strings degrade to (noon).
const DefaultMinutes = 720

// Period is the clock period of a 12-hour time.
type Period int

const (
	PeriodUnknown Period = iota
	PeriodAM
	PeriodPM
)

// TimeRange is a normalized time interval in minutes since midnight.
// End may exceed MinutesPerDay for ranges that wrap past midnight;
// ParseRange produces Start <= End always.
type TimeRange struct {
	Start int
	End   int
}

// Duration returns the range length in minutes.
func (r TimeRange) Duration() int {
	return r.End - r.Start
}

// Overlaps reports whether two ranges share any open sub-interval.
// Ranges that only touch at a boundary do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && r.End > other.Start
}

// Block is one of the three fixed daily periods used to bucket tasks.
type Block string

const (
	BlockMorning   Block = "morning"
	BlockAfternoon Block = "afternoon"
	BlockEvening   Block = "evening"
)

// BlockOrder is the fixed scan order for slot suggestion fallback.
var BlockOrder = []Block{BlockMorning, BlockAfternoon, BlockEvening}

var blockRanges = map[Block]TimeRange{
	BlockMorning:   {Start: 6 * 60, End: 12 * 60},
	BlockAfternoon: {Start: 12 * 60, End: 18 * 60},
	BlockEvening:   {Start: 18 * 60, End: 23 * 60},
}

// BlockRange returns the boundaries of a named block.
func BlockRange(b Block) (TimeRange, bool) {
	r, ok := blockRanges[b]
	return r, ok
}

// BlockOf returns the block containing the given start minute.
// Starts outside every block map to the nearest block by convention:
// before 06:00 is morning, after 23:00 is evening.
func BlockOf(startMinutes int) Block {
	switch {
	case startMinutes < blockRanges[BlockAfternoon].Start:
		return BlockMorning
	case startMinutes < blockRanges[BlockEvening].Start:
		return BlockAfternoon
	default:
		return BlockEvening
	}
}
