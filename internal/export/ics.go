package export

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/tracker"
)

const (
	prodID          = "-//stride//Training Plan//EN"
	defaultDuration = 60 // minutes, for sessions without an estimate
)

type Options struct {
	Hour            int            // local start hour of every session
	ReminderMinutes int            // 0 disables the alarm
	Location        *time.Location // nil means time.Local
	Now             time.Time      // DTSTAMP; zero means time.Now
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Event is one VEVENT of a calendar.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Reminder    int // minutes before the event
}

// WeekICS renders every training session of a week as a calendar.
func WeekICS(p *models.Program, weekNumber int, start time.Time, opts Options) (string, error) {
	w, err := tracker.FindWeek(p, weekNumber)
	if err != nil {
		return "", err
	}

	var events []Event
	for _, s := range w.Sessions {
		if s.Type.IsRest() {
			continue
		}
		ev, err := sessionEvent(p, w.WeekNumber, s, start, opts)
		if err != nil {
			return "", err
		}
		events = append(events, ev)
	}
	return GenerateICS(fmt.Sprintf("%s - Week %d", p.RaceName, weekNumber), events, opts.now()), nil
}

// SessionICS renders a single session as a calendar.
func SessionICS(p *models.Program, sessionID string, start time.Time, opts Options) (string, error) {
	w, s, err := tracker.FindSession(p, sessionID)
	if err != nil {
		return "", err
	}
	if s.Type.IsRest() {
		return "", fmt.Errorf("session %s is a rest day", sessionID)
	}
	ev, err := sessionEvent(p, w.WeekNumber, *s, start, opts)
	if err != nil {
		return "", err
	}
	return GenerateICS(p.RaceName, []Event{ev}, opts.now()), nil
}

func sessionEvent(p *models.Program, weekNumber int, s models.Session, start time.Time, opts Options) (Event, error) {
	at, err := SessionDate(start, weekNumber-1, s.Day, opts.Hour, opts.Location)
	if err != nil {
		return Event{}, err
	}
	d := defaultDuration
	if s.Duration != nil && *s.Duration > 0 {
		d = *s.Duration
	}

	lines := make([]string, 0, len(s.Structure))
	for _, b := range s.Structure {
		lines = append(lines, fmt.Sprintf("[%s] %s", b.Kind, b.Details))
	}

	return Event{
		// Stable across exports so calendars update instead of duplicating.
		UID:         uuid.NewSHA1(uuid.NameSpaceURL, []byte(p.ID+"/"+s.ID)).String() + "@stride",
		Summary:     "stride - " + s.Title,
		Description: strings.Join(lines, "\n"),
		Location:    "Outdoors",
		StartTime:   at,
		EndTime:     at.Add(time.Duration(d) * time.Minute),
		Reminder:    opts.ReminderMinutes,
	}, nil
}

// GenerateICS writes events as an RFC 5545 calendar with CRLF line endings.
func GenerateICS(name string, events []Event, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, ev := range events {
		e := cal.AddEvent(ev.UID)
		e.SetDtStampTime(stamp)
		e.SetStartAt(ev.StartTime)
		e.SetEndAt(ev.EndTime)
		e.SetSummary(ev.Summary)
		if ev.Description != "" {
			e.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			e.SetLocation(ev.Location)
		}
		if ev.Reminder > 0 {
			alarm := e.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetTrigger(fmt.Sprintf("-PT%dM", ev.Reminder))
			alarm.SetProperty(ics.ComponentPropertyDescription, ev.Summary)
		}
	}

	return cal.Serialize(ics.WithNewLineWindows)
}
