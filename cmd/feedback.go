package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/adapt"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/tracker"
)

var clearFeedback bool

var feedbackCmd = &cobra.Command{
	Use:   "feedback [session-id] [easy|medium|hard]",
	Short: "Record how a session felt",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearFeedback && len(args) != 2 {
			return fmt.Errorf("expected a rating: easy, medium or hard")
		}

		ctx := cmd.Context()
		cfg, st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		prog, err := loadActive(ctx, st)
		if err != nil {
			return err
		}

		var updated *models.Program
		if clearFeedback {
			updated, err = tracker.ClearFeedback(prog, args[0])
		} else {
			var f models.Feedback
			f, err = models.ParseFeedback(args[1])
			if err != nil {
				return err
			}
			updated, err = tracker.SetFeedback(prog, args[0], f)
		}
		if err != nil {
			return err
		}

		if err := st.SaveActiveProgram(ctx, updated); err != nil {
			return err
		}
		fmt.Println("✅ Feedback saved")

		if sg := adapt.Detect(updated, cfg.Adapt); sg.Reduce {
			yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
			fmt.Printf("%s your last %d sessions felt hard. Consider `stride adapt` to lower VMA from %.1f to %.1f km/h.\n",
				yellow("Heads up:"), len(sg.Sessions), updated.VMA, sg.NewVMA)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.Flags().BoolVar(&clearFeedback, "clear", false, "Remove the feedback of the session")
}
