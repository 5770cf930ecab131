package tz

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DateLayout is the calendar-date format used for due dates and calendar cells.
const DateLayout = "2006-01-02"

// Toronto is the America/Toronto location (EST/EDT with automatic DST), the
// club's default time zone.
var Toronto *time.Location

func init() {
	var err error
	Toronto, err = time.LoadLocation("America/Toronto")
	if err != nil {
		panic("tz: load America/Toronto: " + err.Error())
	}
}

// Load resolves a zone name, falling back to Toronto when name is empty.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return Toronto, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}

// Date returns the calendar date of t in loc.
func Date(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// AddDays returns the calendar date n days after the date of t in loc.
func AddDays(t time.Time, loc *time.Location, n int) string {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+n, 12, 0, 0, 0, loc).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// Day returns the calendar date t carries in its own zone. Due dates are
// civil dates, so they are never shifted into another zone.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}
