package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/tracker"
)

var showWeekCmd = &cobra.Command{
	Use:   "show-week [week]",
	Short: "Display the seven days of a week (defaults to the current week)",
	Args:  cobra.MaximumNArgs(1),
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

		number := tracker.CurrentWeek(prog, time.Now())
		if len(args) == 1 {
			number, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid week number: %s", args[0])
			}
		}

		w, err := tracker.FindWeek(prog, number)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("\n%s  %s  (%s)\n", bold(fmt.Sprintf("Week %d/%d", w.WeekNumber, prog.TotalWeeks)), w.Title, phaseLabel(w.Phase))
		fmt.Printf("~%d km over %d sessions\n", w.TotalKm, w.SessionsCount)
		fmt.Println(strings.Repeat("-", 72))

		for _, s := range w.Sessions {
			fmt.Printf("%s %-9s %s %-26s %6s %8s  %s\n",
				checkMark(s.Completed), s.Day, typeLabel(s.Type), s.Title,
				minutesLabel(s.Duration), kmLabel(s.Distance), feedbackLabel(s.Feedback))
			if !s.Type.IsRest() {
				fmt.Printf("  %s\n", color.New(color.FgHiBlack).Sprint(s.ID))
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showWeekCmd)
}
