package models

import (
	"fmt"
	"strings"
	"time"
)

type Distance string

const (
	DistanceTenK     Distance = "10km"
	DistanceHalf     Distance = "half-marathon"
	DistanceMarathon Distance = "marathon"
)

func ParseDistance(s string) (Distance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "10k", "10km":
		return DistanceTenK, nil
	case "half", "half-marathon", "semi", "semi-marathon", "21k":
		return DistanceHalf, nil
	case "marathon", "42k":
		return DistanceMarathon, nil
	}
	return "", fmt.Errorf("unknown distance %q (expected 10km, half-marathon or marathon)", s)
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBeginner:
		return LevelBeginner, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	case LevelAdvanced:
		return LevelAdvanced, nil
	}
	return "", fmt.Errorf("unknown level %q (expected beginner, intermediate or advanced)", s)
}

// RaceInfo is the optional race metadata attached to a program.
type RaceInfo struct {
	Name      string    `json:"name" toml:"name"`
	Date      time.Time `json:"date" toml:"date"`
	Elevation float64   `json:"elevation" toml:"elevation"` // Positive elevation gain in meters.
}

// Settings is what the caller hands to the generator.
type Settings struct {
	Distance        Distance  `json:"distance"`
	Level           Level     `json:"level"`
	RaceName        string    `json:"race_name"`
	RaceDate        time.Time `json:"race_date"`
	SessionsPerWeek int       `json:"sessions_per_week"`
	TimeObjective   string    `json:"time_objective"`
	VMA             float64   `json:"vma"` // km/h
	RaceInfo        *RaceInfo `json:"race_info,omitempty"`
}

type Program struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Settings
	Weeks      []Week     `json:"weeks"`
	TotalWeeks int        `json:"total_weeks"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// Elevation returns the race elevation gain, zero when unknown.
func (s Settings) Elevation() float64 {
	if s.RaceInfo == nil {
		return 0
	}
	return s.RaceInfo.Elevation
}

// Clone returns a deep copy of p.
func (p *Program) Clone() *Program {
	if p == nil {
		return nil
	}
	c := *p
	if p.RaceInfo != nil {
		info := *p.RaceInfo
		c.RaceInfo = &info
	}
	if p.ArchivedAt != nil {
		at := *p.ArchivedAt
		c.ArchivedAt = &at
	}
	c.Weeks = make([]Week, len(p.Weeks))
	for i, w := range p.Weeks {
		c.Weeks[i] = w.clone()
	}
	return &c
}

func (w Week) clone() Week {
	sessions := make([]Session, len(w.Sessions))
	for i, s := range w.Sessions {
		sessions[i] = s.clone()
	}
	w.Sessions = sessions
	return w
}

func (s Session) clone() Session {
	if s.Duration != nil {
		d := *s.Duration
		s.Duration = &d
	}
	if s.Distance != nil {
		d := *s.Distance
		s.Distance = &d
	}
	if s.Feedback != nil {
		f := *s.Feedback
		s.Feedback = &f
	}
	blocks := make([]WorkoutBlock, len(s.Structure))
	for i, b := range s.Structure {
		if b.Duration != nil {
			d := *b.Duration
			b.Duration = &d
		}
		if b.Distance != nil {
			d := *b.Distance
			b.Distance = &d
		}
		if b.Effort != nil {
			e := *b.Effort
			b.Effort = &e
		}
		blocks[i] = b
	}
	s.Structure = blocks
	return s
}

//
// For TOML parsing only
//

type SettingsTOML struct {
	Distance        string  `toml:"distance"`
	Level           string  `toml:"level"`
	RaceName        string  `toml:"race_name"`
	RaceDate        string  `toml:"race_date"` // YYYY-MM-DD
	SessionsPerWeek int     `toml:"sessions_per_week"`
	TimeObjective   string  `toml:"time_objective"`
	VMA             float64 `toml:"vma"`
	Elevation       float64 `toml:"elevation,omitempty"`
	Course          string  `toml:"course,omitempty"` // Path to a GPX file of the race course.
}
