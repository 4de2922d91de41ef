package model

import "time"

// Task is a scheduled activity occupying a time range on a given day.
// Start and Duration are the canonical representation (minutes since
// midnight / minutes); Time is the display string rendered from them.
type Task struct {
	ID         string
	UserID     string
	Name       string
	Time       string // display range, e.g. "9:00 AM-10:00 AM"
	Start      int    // minutes since midnight
	Duration   int    // minutes, always > 0
	CategoryID string
	Category   string // category name label
	Block      string // morning, afternoon, evening
	Date       string // target day, YYYY-MM-DD
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Category groups tasks by area (work, health, study, etc.).
// Name is unique per user, case-insensitively.
type Category struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	BgColor   string
	TextColor string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultCategoryName is the fallback label tasks are reassigned to when
// their category is deleted or cannot be resolved.
const DefaultCategoryName = "Personal"
