package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/tracker"
)

var completeCmd = &cobra.Command{
	Use:   "complete [session-id]",
	Short: "Mark a session as done, or undo it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		updated, err := tracker.ToggleComplete(prog, args[0])
		if err != nil {
			return err
		}
		if err := st.SaveActiveProgram(ctx, updated); err != nil {
			return err
		}

		_, s, _ := tracker.FindSession(updated, args[0])
		if s.Completed {
			fmt.Printf("✅ %s (%s) completed\n", s.Title, s.ID)
		} else {
			fmt.Printf("↩️  %s (%s) marked as not done\n", s.Title, s.ID)
		}

		p := tracker.ComputeProgress(updated)
		fmt.Printf("Progress: %d/%d sessions (%d%%)\n", p.Completed, p.Planned, p.Percent())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
