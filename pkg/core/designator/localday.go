package designator

import (
	"time"
	// Embed the IANA database so America/Mexico_City resolves on hosts
	// without a system zoneinfo.
	_ "time/tzdata"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// TimeZoneName is the calendar all day-level logic runs in. Kickoffs are
// stored as instants; weekday and same-day decisions are made in local time.
const TimeZoneName = "America/Mexico_City"

var matchLocation = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation(TimeZoneName)
	if err != nil {
		panic("designator: " + err.Error())
	}
	return loc
}

// dayRolloverHour is the local hour at which one match day ends and the
// next begins. Kickoffs shortly after midnight belong to the previous match
// day, so a 23:30 fixture and a 00:30 fixture double-book the same crew.
const dayRolloverHour = 1

// LocalDayBounds returns the instants [start, end) of the local match day
// containing t. The bounds are computed directly in the match timezone, so
// DST transitions and non-UTC offsets need no manual arithmetic.
func LocalDayBounds(t time.Time) (start, end time.Time) {
	local := t.In(matchLocation)
	if local.Hour() < dayRolloverHour {
		local = local.AddDate(0, 0, -1)
	}
	start = time.Date(local.Year(), local.Month(), local.Day(), dayRolloverHour, 0, 0, 0, matchLocation)
	end = start.AddDate(0, 0, 1)
	return start, end
}

// SameLocalDay reports whether two instants fall on the same local match day
func SameLocalDay(a, b time.Time) bool {
	start, end := LocalDayBounds(a)
	return !b.Before(start) && b.Before(end)
}

var weekdayLetters = map[time.Weekday]model.Weekday{
	time.Monday:    model.WeekdayMonday,
	time.Tuesday:   model.WeekdayTuesday,
	time.Wednesday: model.WeekdayWednesday,
	time.Thursday:  model.WeekdayThursday,
	time.Friday:    model.WeekdayFriday,
	time.Saturday:  model.WeekdaySaturday,
	time.Sunday:    model.WeekdaySunday,
}

// WeekdayLetter returns the local day-of-week letter (L M X J V S D) for an
// instant
func WeekdayLetter(t time.Time) model.Weekday {
	return weekdayLetters[t.In(matchLocation).Weekday()]
}
