package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/utils"
)

var (
	clearHistory bool
	showArchived string
)

// historyCmd lists archived programs, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived programs, show one of them, or clear the history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if clearHistory {
			n, err := st.ClearHistory(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("✅ %d archived programs deleted\n", n)
			return nil
		}

		if showArchived != "" {
			p, err := st.GetArchived(ctx, showArchived)
			if err != nil {
				return err
			}
			printProgram(p, false)
			return nil
		}

		entries, err := st.ListHistory(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No archived programs")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-24s %-14s %2d weeks  %3d%% done  archived %s\n",
				e.ID, e.RaceName, e.Distance, e.TotalWeeks, e.Progress.Percent(), e.ArchivedAt.Format(utils.DateLayout))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&clearHistory, "clear", false, "Delete every archived program")
	historyCmd.Flags().StringVarP(&showArchived, "show", "s", "", "Show an archived program by ID")
}
