// Package export turns sessions into files other tools understand: iCalendar
// events for calendars and FIT workouts for running watches.
package export

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
)

// goWeekday maps the canonical day labels onto time.Weekday.
var goWeekday = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// SessionDate places a session on the calendar. Week 0 starts at start; the
// session falls on the next occurrence of day (start itself included), weekIndex
// weeks later, at hour in loc.
func SessionDate(start time.Time, weekIndex int, day string, hour int, loc *time.Location) (time.Time, error) {
	i := models.DayIndex(day)
	if i < 0 {
		return time.Time{}, fmt.Errorf("unknown day %q", day)
	}
	target := goWeekday[models.Weekdays[i]]
	if loc == nil {
		loc = time.Local
	}

	s := start.In(loc)
	offset := (int(target) - int(s.Weekday()) + 7) % 7
	return time.Date(s.Year(), s.Month(), s.Day()+weekIndex*7+offset, hour, 0, 0, 0, loc), nil
}
