package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/adapt"
	"github.com/misterclayt0n/stride/internal/tracker"
	"github.com/misterclayt0n/stride/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show progress on the active program: current week, completed sessions, distance done",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		prog, err := loadActive(cmd.Context(), st)
		if err != nil {
			return err
		}

		now := time.Now()
		progress := tracker.ComputeProgress(prog)
		current := tracker.CurrentWeek(prog, now)
		w, err := tracker.FindWeek(prog, current)
		if err != nil {
			return err
		}

		doneKm, plannedKm := 0, 0
		for _, wp := range progress.Weeks {
			doneKm += wp.DoneKm
			plannedKm += wp.Km
		}

		printBoxedHeader("STATUS")
		printMetric("Race", fmt.Sprintf("%s (%s)", prog.RaceName, prog.Distance))
		printMetric("Days to race", utils.DaysUntil(now, prog.RaceDate))
		printMetric("Current week", fmt.Sprintf("%d/%d, %s", current, prog.TotalWeeks, w.Title))
		printMetric("Sessions done", fmt.Sprintf("%d/%d (%d%%)", progress.Completed, progress.Planned, progress.Percent()))
		printMetric("Distance done", fmt.Sprintf("~%d/%d km", doneKm, plannedKm))
		printMetric("VMA", fmt.Sprintf("%.1f km/h", prog.VMA))
		fmt.Println()

		wp := progress.Weeks[current-1]
		header := color.New(color.FgGreen, color.Bold).Sprintf("This week (%d/%d):", wp.Completed, wp.Planned)
		fmt.Println(header)
		for _, s := range w.Sessions {
			if s.Type.IsRest() {
				continue
			}
			fmt.Printf("  %s %-9s %s %s\n", checkMark(s.Completed), s.Day, typeLabel(s.Type), s.Title)
		}
		fmt.Println()

		if sg := adapt.Detect(prog, cfg.Adapt); sg.Reduce {
			fmt.Printf("%s %d hard sessions in a row, see `stride adapt`\n",
				color.New(color.FgYellow, color.Bold).Sprint("•"), sg.Hard)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
