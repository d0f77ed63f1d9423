// Package tracker applies the few changes a program accepts once generated:
// completion, feedback, day swaps and archiving. Every function returns a new
// program and leaves its input untouched.
package tracker

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrWeekNotFound    = errors.New("week not found")
	ErrDifferentWeeks  = errors.New("sessions belong to different weeks")
)

// FindSession returns the week and session holding id.
func FindSession(p *models.Program, id string) (*models.Week, *models.Session, error) {
	for wi := range p.Weeks {
		w := &p.Weeks[wi]
		for si := range w.Sessions {
			if w.Sessions[si].ID == id {
				return w, &w.Sessions[si], nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
}

func FindWeek(p *models.Program, number int) (*models.Week, error) {
	for i := range p.Weeks {
		if p.Weeks[i].WeekNumber == number {
			return &p.Weeks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrWeekNotFound, number)
}

// ToggleComplete flips the completed flag of a session.
func ToggleComplete(p *models.Program, id string) (*models.Program, error) {
	out := p.Clone()
	_, s, err := FindSession(out, id)
	if err != nil {
		return nil, err
	}
	s.Completed = !s.Completed
	return out, nil
}

// SetFeedback records how hard a session felt. Feedback may be given on any
// session; it does not mark the session completed.
func SetFeedback(p *models.Program, id string, f models.Feedback) (*models.Program, error) {
	if _, err := models.ParseFeedback(string(f)); err != nil {
		return nil, err
	}
	out := p.Clone()
	_, s, err := FindSession(out, id)
	if err != nil {
		return nil, err
	}
	s.Feedback = &f
	return out, nil
}

func ClearFeedback(p *models.Program, id string) (*models.Program, error) {
	out := p.Clone()
	_, s, err := FindSession(out, id)
	if err != nil {
		return nil, err
	}
	s.Feedback = nil
	return out, nil
}

// SwapDays exchanges the day labels of two sessions of the same week, then
// restores canonical day order. IDs are kept, so a session remembers the day
// it was generated for.
func SwapDays(p *models.Program, weekNumber int, idA, idB string) (*models.Program, error) {
	out := p.Clone()
	w, err := FindWeek(out, weekNumber)
	if err != nil {
		return nil, err
	}

	if idA == idB {
		if _, _, err := FindSession(out, idA); err != nil {
			return nil, err
		}
		return out, nil
	}

	a, b := -1, -1
	for i, s := range w.Sessions {
		switch s.ID {
		case idA:
			a = i
		case idB:
			b = i
		}
	}
	for _, pair := range []struct {
		id  string
		idx int
	}{{idA, a}, {idB, b}} {
		if pair.idx >= 0 {
			continue
		}
		if _, _, err := FindSession(out, pair.id); err == nil {
			return nil, fmt.Errorf("%w: %s is not in week %d", ErrDifferentWeeks, pair.id, weekNumber)
		}
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, pair.id)
	}

	w.Sessions[a].Day, w.Sessions[b].Day = w.Sessions[b].Day, w.Sessions[a].Day
	sort.SliceStable(w.Sessions, func(i, j int) bool {
		return models.DayIndex(w.Sessions[i].Day) < models.DayIndex(w.Sessions[j].Day)
	})
	return out, nil
}

// Archive stamps the archive time on a copy of p.
func Archive(p *models.Program, now time.Time) *models.Program {
	out := p.Clone()
	at := now.UTC()
	out.ArchivedAt = &at
	return out
}

type WeekProgress struct {
	WeekNumber int
	Completed  int
	Planned    int
	Km         int
	DoneKm     int
}

// Progress counts completed against planned training sessions. Rest days are
// not counted.
type Progress struct {
	Completed int
	Planned   int
	Weeks     []WeekProgress
}

// Percent returns the completed share, 0 to 100.
func (p Progress) Percent() int {
	if p.Planned == 0 {
		return 0
	}
	return p.Completed * 100 / p.Planned
}

func ComputeProgress(p *models.Program) Progress {
	var out Progress
	for _, w := range p.Weeks {
		wp := WeekProgress{WeekNumber: w.WeekNumber, Km: w.TotalKm}
		for _, s := range w.Sessions {
			if s.Type.IsRest() {
				continue
			}
			wp.Planned++
			if s.Completed {
				wp.Completed++
				if s.Distance != nil {
					wp.DoneKm += *s.Distance
				}
			}
		}
		out.Planned += wp.Planned
		out.Completed += wp.Completed
		out.Weeks = append(out.Weeks, wp)
	}
	return out
}

// CurrentWeek returns the week number covering now, clamped to the program.
func CurrentWeek(p *models.Program, now time.Time) int {
	if len(p.Weeks) == 0 {
		return 0
	}
	days := int(now.UTC().Sub(p.CreatedAt).Hours() / 24)
	week := days/7 + 1
	return min(max(week, 1), len(p.Weeks))
}
