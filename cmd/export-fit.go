package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/export"
	"github.com/misterclayt0n/stride/internal/tracker"
)

var fitOutput string

var exportFITCmd = &cobra.Command{
	Use:   "export-fit [session-id]",
	Short: "Export a session as a FIT workout for a running watch",
	Args:  cobra.ExactArgs(1),
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
		_, s, err := tracker.FindSession(prog, args[0])
		if err != nil {
			return err
		}

		path := fitOutput
		if path == "" {
			path = filepath.Join(cfg.Export.OutputDir, fmt.Sprintf("stride_%s.fit", s.ID))
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := export.SessionFIT(f, *s, prog.VMA, time.Now()); err != nil {
			os.Remove(path)
			return err
		}

		fmt.Printf("✅ Workout written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportFITCmd)
	exportFITCmd.Flags().StringVarP(&fitOutput, "output", "o", "", "Output file")
}
