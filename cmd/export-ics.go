package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/export"
	"github.com/misterclayt0n/stride/internal/tracker"
	"github.com/misterclayt0n/stride/internal/utils"
)

var (
	icsSession string
	icsOutput  string
)

var exportICSCmd = &cobra.Command{
	Use:   "export-ics [week]",
	Short: "Export a week (or a single session) as an iCalendar file",
	Args:  cobra.MaximumNArgs(1),
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
		loc, err := utils.LoadLocation(cfg.Export.TimeZone)
		if err != nil {
			return err
		}
		opts := export.Options{
			Hour:            cfg.Export.Hour,
			ReminderMinutes: cfg.Export.ReminderMinutes,
			Location:        loc,
		}

		var content, name string
		if icsSession != "" {
			content, err = export.SessionICS(prog, icsSession, prog.CreatedAt, opts)
			name = fmt.Sprintf("stride_%s.ics", icsSession)
		} else {
			week := tracker.CurrentWeek(prog, time.Now())
			if len(args) == 1 {
				week, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid week number: %s", args[0])
				}
			}
			content, err = export.WeekICS(prog, week, prog.CreatedAt, opts)
			name = fmt.Sprintf("stride_week_%d.ics", week)
		}
		if err != nil {
			return err
		}

		path := icsOutput
		if path == "" {
			path = filepath.Join(cfg.Export.OutputDir, name)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("✅ Calendar written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportICSCmd)
	exportICSCmd.Flags().StringVarP(&icsSession, "session", "s", "", "Export a single session instead of a week")
	exportICSCmd.Flags().StringVarP(&icsOutput, "output", "o", "", "Output file")
}
