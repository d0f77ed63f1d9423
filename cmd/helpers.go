package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/misterclayt0n/stride/internal/config"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/storage"
)

// openStorage loads the configuration and connects to the database.
func openStorage(ctx context.Context) (*config.Config, *storage.Storage, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	st, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}

func loadActive(ctx context.Context, st *storage.Storage) (*models.Program, error) {
	p, err := st.LoadActiveProgram(ctx)
	if errors.Is(err, storage.ErrNoActiveProgram) {
		return nil, fmt.Errorf("no active program, create one with `stride new-program`")
	}
	return p, err
}

var typeColors = map[models.SessionType]*color.Color{
	models.SessionInterval:  color.New(color.FgRed, color.Bold),
	models.SessionHill:      color.New(color.FgMagenta, color.Bold),
	models.SessionTempo:     color.New(color.FgYellow, color.Bold),
	models.SessionLongRun:   color.New(color.FgBlue, color.Bold),
	models.SessionEndurance: color.New(color.FgGreen),
	models.SessionRest:      color.New(color.FgHiBlack),
}

func typeLabel(t models.SessionType) string {
	c, ok := typeColors[t]
	if !ok {
		return string(t)
	}
	return c.Sprintf("%-9s", t)
}

func phaseLabel(p models.Phase) string {
	switch p {
	case models.PhaseTaper:
		return color.New(color.FgCyan).Sprint(p)
	case models.PhaseRecovery:
		return color.New(color.FgGreen).Sprint(p)
	case models.PhaseBuildUp:
		return color.New(color.FgYellow).Sprint(p)
	default:
		return color.New(color.FgRed).Sprint(p)
	}
}

func minutesLabel(d *int) string {
	if d == nil {
		return "-"
	}
	if *d >= 60 {
		return fmt.Sprintf("%dh%02d", *d/60, *d%60)
	}
	return fmt.Sprintf("%d'", *d)
}

func kmLabel(d *int) string {
	if d == nil {
		return "-"
	}
	return fmt.Sprintf("~%d km", *d)
}

func checkMark(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("✔")
	}
	return " "
}

func feedbackLabel(f *models.Feedback) string {
	if f == nil {
		return ""
	}
	switch *f {
	case models.FeedbackHard:
		return color.New(color.FgRed).Sprint("hard")
	case models.FeedbackMedium:
		return color.New(color.FgYellow).Sprint("medium")
	default:
		return color.New(color.FgGreen).Sprint("easy")
	}
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + padCenter(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func padCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}
