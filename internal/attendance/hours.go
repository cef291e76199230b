package attendance

import (
	"math"
	"time"
)

// ComputeHours derives the hours-worked value from a pair of check
// instants on the same record. The result is present only when both are
// set and checkOut is strictly after checkIn; an overnight pair (checkOut
// time-of-day at or before checkIn) yields nil rather than rolling over
// a day. Rounded to 2 fractional digits, matching the numeric(5,2) column.
func ComputeHours(checkIn, checkOut *time.Time) *float64 {
	if checkIn == nil || checkOut == nil {
		return nil
	}
	if !checkOut.After(*checkIn) {
		return nil
	}
	h := checkOut.Sub(*checkIn).Hours()
	h = math.Round(h*100) / 100
	return &h
}

// CombineDateTime anchors a wall-clock time onto the record's date.
func CombineDateTime(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		time.UTC,
	)
}
