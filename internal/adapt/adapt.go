// Package adapt watches session feedback and proposes a lower training
// intensity when the athlete keeps reporting hard sessions.
package adapt

import (
	"math"

	"github.com/misterclayt0n/stride/internal/models"
)

type Rule struct {
	Window    int     `toml:"window"`    // consecutive hard sessions that trigger a suggestion
	Reduction float64 `toml:"reduction"` // percent of VMA removed
}

func DefaultRule() Rule {
	return Rule{Window: 3, Reduction: 5}
}

func (r Rule) WithDefaults() Rule {
	d := DefaultRule()
	if r.Window <= 0 {
		r.Window = d.Window
	}
	if r.Reduction <= 0 || r.Reduction >= 100 {
		r.Reduction = d.Reduction
	}
	return r
}

type Suggestion struct {
	Reduce    bool
	Reduction float64
	Hard      int      // hard sessions at the tail of the completed ones
	Sessions  []string // IDs of the sessions behind the suggestion
	NewVMA    float64
}

// Detect looks at the most recently completed training sessions, in plan
// order, and suggests a reduction when the last Window of them were all rated
// hard. Sessions without feedback break the streak.
func Detect(p *models.Program, rule Rule) Suggestion {
	rule = rule.WithDefaults()

	var completed []models.Session
	for _, w := range p.Weeks {
		for _, s := range w.Sessions {
			if s.Completed && !s.Type.IsRest() {
				completed = append(completed, s)
			}
		}
	}

	var streak []string
	for i := len(completed) - 1; i >= 0; i-- {
		s := completed[i]
		if s.Feedback == nil || *s.Feedback != models.FeedbackHard {
			break
		}
		streak = append(streak, s.ID)
	}

	sg := Suggestion{Hard: len(streak), Reduction: rule.Reduction, NewVMA: p.VMA}
	if len(streak) >= rule.Window {
		sg.Reduce = true
		sg.Sessions = streak[:rule.Window]
		sg.NewVMA = ReduceVMA(p.VMA, rule.Reduction)
	}
	return sg
}

// ReduceVMA lowers vma by percent, rounded to one decimal.
func ReduceVMA(vma, percent float64) float64 {
	return math.Round(vma*(1-percent/100)*10) / 10
}

// Apply returns a copy of p whose reference VMA is reduced by percent.
// Sessions are untouched; regenerate to get new paces.
func Apply(p *models.Program, percent float64) *models.Program {
	out := p.Clone()
	out.VMA = ReduceVMA(p.VMA, percent)
	return out
}
