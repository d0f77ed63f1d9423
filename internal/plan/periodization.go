package plan

import (
	"fmt"

	"github.com/misterclayt0n/stride/internal/models"
)

// PhaseOf classifies a 1-indexed week. Taper wins over recovery, which wins
// over build-up. Zero fields of r take their default.
func (r Rules) PhaseOf(week, totalWeeks int) models.Phase {
	r = r.WithDefaults()
	switch {
	case week > totalWeeks-r.TaperWeeks:
		return models.PhaseTaper
	case week%r.RecoveryEvery == 0:
		return models.PhaseRecovery
	case week <= r.BuildUpWeeks:
		return models.PhaseBuildUp
	default:
		return models.PhaseProgression
	}
}

func weekTitle(phase models.Phase, week int) string {
	switch phase {
	case models.PhaseTaper:
		return "Taper (until race day)"
	case models.PhaseRecovery:
		return "Assimilation Week"
	case models.PhaseBuildUp:
		return fmt.Sprintf("Build-up - Week %d", week)
	default:
		return fmt.Sprintf("Development Cycle - Week %d", week)
	}
}

// ClampSessions maps any sessions-per-week value onto the supported [2,6] range.
func ClampSessions(n int) int {
	if n < 2 {
		return 2
	}
	if n > 6 {
		return 6
	}
	return n
}

// TrainingDays returns the days holding a run for a (clamped) weekly session count.
func TrainingDays(sessionsPerWeek int) []string {
	switch ClampSessions(sessionsPerWeek) {
	case 2:
		return []string{"Wednesday", "Sunday"}
	case 3:
		return []string{"Tuesday", "Thursday", "Sunday"}
	case 4:
		return []string{"Tuesday", "Wednesday", "Friday", "Sunday"}
	default:
		return []string{"Tuesday", "Wednesday", "Thursday", "Saturday", "Sunday"}
	}
}

type slot int

const (
	slotLongRun slot = iota
	slotQuality
	slotTempo
	slotEndurance
	slotRecoveryRun
)

// slotOf decides what a training day is for. Sunday always carries the long run.
func slotOf(day string, sessionsPerWeek int) slot {
	switch {
	case day == "Sunday":
		return slotLongRun
	case day == "Tuesday" || (sessionsPerWeek == 2 && day == "Wednesday"):
		return slotQuality
	case day == "Thursday" && sessionsPerWeek >= 3:
		return slotTempo
	case day == "Wednesday":
		return slotEndurance
	default:
		return slotRecoveryRun
	}
}
