package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/tracker"
)

var swapDaysCmd = &cobra.Command{
	Use:   "swap-days [week] [session-id] [session-id]",
	Short: "Exchange the days of two sessions of the same week",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid week number: %s", args[0])
		}

		ctx := cmd.Context()
		_, st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		prog, err := loadActive(ctx, st)
		if err != nil {
			return err
		}

		updated, err := tracker.SwapDays(prog, week, args[1], args[2])
		if err != nil {
			return err
		}
		if err := st.SaveActiveProgram(ctx, updated); err != nil {
			return err
		}

		_, a, _ := tracker.FindSession(updated, args[1])
		_, b, _ := tracker.FindSession(updated, args[2])
		fmt.Printf("✅ %s now on %s, %s now on %s\n", a.Title, a.Day, b.Title, b.Day)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapDaysCmd)
}
