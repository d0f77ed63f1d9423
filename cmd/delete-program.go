package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var deleteProgramCmd = &cobra.Command{
	Use:   "delete-program",
	Short: "Archive the active program into the history",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if _, err := loadActive(cmd.Context(), st); err != nil {
			return err
		}
		p, err := st.ArchiveActiveProgram(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to archive program: %w", err)
		}

		fmt.Printf("✅ Program '%s' archived\n", p.RaceName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteProgramCmd)
}
