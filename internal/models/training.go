package models

import (
	"fmt"
	"strings"
)

// Weekdays holds the canonical day labels, Monday first.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayIndex returns the position of day in Weekdays, or -1.
func DayIndex(day string) int {
	for i, d := range Weekdays {
		if strings.EqualFold(d, day) {
			return i
		}
	}
	return -1
}

type SessionType string

const (
	SessionEndurance SessionType = "endurance"
	SessionTempo     SessionType = "tempo"
	SessionInterval  SessionType = "interval"
	SessionLongRun   SessionType = "long-run"
	SessionHill      SessionType = "hill"
	SessionRest      SessionType = "rest"
)

// IsHighIntensity reports whether the session is run mostly above easy pace.
// Unknown types are treated as easy.
func (t SessionType) IsHighIntensity() bool {
	switch t {
	case SessionInterval, SessionTempo, SessionHill:
		return true
	case SessionEndurance, SessionLongRun, SessionRest:
		return false
	default:
		return false
	}
}

func (t SessionType) IsRest() bool { return t == SessionRest }

type BlockKind string

const (
	BlockWarmup   BlockKind = "warmup"
	BlockMainSet  BlockKind = "main-set"
	BlockCooldown BlockKind = "cooldown"
	BlockInfo     BlockKind = "info"
)

type Feedback string

const (
	FeedbackEasy   Feedback = "easy"
	FeedbackMedium Feedback = "medium"
	FeedbackHard   Feedback = "hard"
)

func ParseFeedback(s string) (Feedback, error) {
	switch Feedback(strings.ToLower(strings.TrimSpace(s))) {
	case FeedbackEasy:
		return FeedbackEasy, nil
	case FeedbackMedium:
		return FeedbackMedium, nil
	case FeedbackHard:
		return FeedbackHard, nil
	}
	return "", fmt.Errorf("unknown feedback %q (expected easy, medium or hard)", s)
}

// Effort is a target band expressed in percent of VMA.
type Effort struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type WorkoutBlock struct {
	Kind     BlockKind `json:"kind"`
	Duration *int      `json:"duration,omitempty"` // minutes
	Distance *float64  `json:"distance,omitempty"` // km
	Details  string    `json:"details"`
	Effort   *Effort   `json:"effort,omitempty"`
}

type Session struct {
	ID        string         `json:"id"`
	Day       string         `json:"day"`
	Type      SessionType    `json:"type"`
	Title     string         `json:"title"`
	Structure []WorkoutBlock `json:"structure"`
	Duration  *int           `json:"duration,omitempty"` // minutes
	Distance  *int           `json:"distance,omitempty"` // km, estimated
	Completed bool           `json:"completed"`
	Feedback  *Feedback      `json:"feedback,omitempty"`
}

type Phase string

const (
	PhaseBuildUp     Phase = "build-up"
	PhaseProgression Phase = "progression"
	PhaseRecovery    Phase = "recovery"
	PhaseTaper       Phase = "taper"
)

type Week struct {
	WeekNumber    int       `json:"week_number"`
	Title         string    `json:"title"`
	Phase         Phase     `json:"phase"`
	Sessions      []Session `json:"sessions"`
	TotalKm       int       `json:"total_km"`
	SessionsCount int       `json:"sessions_count"` // Configured sessions per week, not len(Sessions).
}
