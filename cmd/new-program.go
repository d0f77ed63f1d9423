package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/models"
)

var newSettings models.SettingsTOML

var newProgramCmd = &cobra.Command{
	Use:   "new-program",
	Short: "Generate a training program from flags",
	Example: `  stride new-program --distance half --level intermediate --race "Lisbon Half" \
    --date 2026-10-11 --sessions 4 --vma 15.5 --course lisbon.gpx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		// Level and VMA fall back to the athlete profile.
		profile, err := store.LoadProfile(cmd.Context())
		if err != nil {
			return err
		}
		st := newSettings
		if st.Level == "" {
			st.Level = string(profile.Level)
		}
		if st.Level == "" {
			return fmt.Errorf("--level is required when the profile has no level")
		}
		if st.VMA == 0 {
			st.VMA = profile.VMA
		}

		return generateAndSave(cmd.Context(), cfg, store, &st, forceReplace)
	},
}

func init() {
	rootCmd.AddCommand(newProgramCmd)
	f := newProgramCmd.Flags()
	f.StringVarP(&newSettings.Distance, "distance", "d", "", "Race distance: 10km, half-marathon or marathon")
	f.StringVarP(&newSettings.Level, "level", "l", "", "Runner level: beginner, intermediate or advanced")
	f.StringVarP(&newSettings.RaceName, "race", "r", "", "Race name")
	f.StringVar(&newSettings.RaceDate, "date", "", "Race date (YYYY-MM-DD)")
	f.IntVarP(&newSettings.SessionsPerWeek, "sessions", "s", 3, "Training sessions per week (2 to 6)")
	f.StringVar(&newSettings.TimeObjective, "objective", "", "Target finish time, e.g. 1h45")
	f.Float64Var(&newSettings.VMA, "vma", 0, "Maximal aerobic speed in km/h")
	f.Float64Var(&newSettings.Elevation, "elevation", 0, "Race elevation gain in meters")
	f.StringVar(&newSettings.Course, "course", "", "GPX file of the race course (sets the elevation gain)")
	f.BoolVarP(&forceReplace, "force", "f", false, "Replace the active program without archiving it")
	newProgramCmd.MarkFlagRequired("distance")
	newProgramCmd.MarkFlagRequired("date")
}
