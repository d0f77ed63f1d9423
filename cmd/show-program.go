package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/tracker"
	"github.com/misterclayt0n/stride/internal/utils"
)

var showAllSessions bool // Print every session under each week.

var showProgramCmd = &cobra.Command{
	Use:   "show-program",
	Short: "Display an overview of the active program, week by week",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		prog, err := loadActive(cmd.Context(), st)
		if err != nil {
			return err
		}

		printProgram(prog, showAllSessions)
		return nil
	},
}

func printProgram(prog *models.Program, sessions bool) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	title := prog.RaceName
	if title == "" {
		title = string(prog.Distance)
	}
	fmt.Printf("\n%s\n", green(strings.ToUpper(title)))
	fmt.Printf("%s: %s, %s\n", cyan("Distance"), prog.Distance, prog.Level)
	fmt.Printf("%s: %s\n", cyan("Race Date"), prog.RaceDate.Format(utils.DateLayout))
	if prog.TimeObjective != "" {
		fmt.Printf("%s: %s\n", cyan("Objective"), prog.TimeObjective)
	}
	fmt.Printf("%s: %.1f km/h\n", cyan("VMA"), prog.VMA)
	if e := prog.Elevation(); e > 0 {
		fmt.Printf("%s: +%.0f m\n", cyan("Elevation"), e)
	}
	fmt.Printf("%s: %s\n", cyan("Created At"), prog.CreatedAt.Format(time.RFC1123))
	fmt.Println(strings.Repeat("=", 60))

	progress := tracker.ComputeProgress(prog)
	current := tracker.CurrentWeek(prog, time.Now())
	for i, w := range prog.Weeks {
		marker := "  "
		if w.WeekNumber == current {
			marker = yellow("▶ ")
		}
		wp := progress.Weeks[i]
		fmt.Printf("%s%s %-28s %-22s %3d km  %d/%d done\n",
			marker, yellow(fmt.Sprintf("W%02d", w.WeekNumber)), w.Title, phaseLabel(w.Phase), w.TotalKm, wp.Completed, wp.Planned)

		if !sessions {
			continue
		}
		for _, s := range w.Sessions {
			if s.Type.IsRest() {
				continue
			}
			fmt.Printf("      %s %-9s %s %-26s %6s %8s\n",
				checkMark(s.Completed), s.Day, typeLabel(s.Type), s.Title, minutesLabel(s.Duration), kmLabel(s.Distance))
		}
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(showProgramCmd)
	showProgramCmd.Flags().BoolVarP(&showAllSessions, "sessions", "s", false, "List the sessions of every week")
}
