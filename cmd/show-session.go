package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/plan"
	"github.com/misterclayt0n/stride/internal/tracker"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session [session-id]",
	Short: "Display the structure of a session with target paces",
	Args:  cobra.ExactArgs(1),
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

		w, s, err := tracker.FindSession(prog, args[0])
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		bold := color.New(color.Bold).SprintFunc()

		fmt.Printf("\n%s %s\n", bold(s.Title), typeLabel(s.Type))
		fmt.Printf("%s: %s, week %d (%s)\n", cyan("Day"), s.Day, w.WeekNumber, w.Title)
		fmt.Printf("%s: %s   %s: %s\n", cyan("Duration"), minutesLabel(s.Duration), cyan("Distance"), kmLabel(s.Distance))
		if s.Completed {
			fmt.Printf("%s: %s %s\n", cyan("Completed"), checkMark(true), feedbackLabel(s.Feedback))
		} else if s.Feedback != nil {
			fmt.Printf("%s: %s\n", cyan("Feedback"), feedbackLabel(s.Feedback))
		}
		fmt.Println(strings.Repeat("-", 60))

		for i, b := range s.Structure {
			fmt.Printf("%d. [%s] %s\n", i+1, b.Kind, b.Details)
			if b.Duration != nil {
				fmt.Printf("   %s: %s\n", cyan("Duration"), minutesLabel(b.Duration))
			}
			if b.Effort != nil {
				fmt.Printf("   %s: %.0f-%.0f%% VMA, %s\n", cyan("Target"), b.Effort.Low, b.Effort.High,
					plan.PaceRange(prog.VMA, b.Effort.Low, b.Effort.High))
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
