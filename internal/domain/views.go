package domain

import "time"

// DaySummary describes one day of a trip for the day picker.
// Day is the 1-based index into the trip's date range; Date is that calendar day.
type DaySummary struct {
	Day           int
	Date          time.Time
	ActivityCount int
}

// ItineraryDay is a DaySummary together with that day's activities,
// ordered by start time.
type ItineraryDay struct {
	DaySummary
	Activities []Activity
}

// CategoryProgress is the packed/total count for one packing category.
type CategoryProgress struct {
	Category PackingCategory
	Packed   int
	Total    int
	Items    []PackingItem
}

// PackingSummary aggregates a trip's packing list.
// Progress is the percentage of packed items, rounded half-up.
type PackingSummary struct {
	Progress   int
	Packed     int
	Total      int
	Categories []CategoryProgress
}
