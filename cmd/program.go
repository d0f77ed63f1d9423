package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/config"
	"github.com/misterclayt0n/stride/internal/course"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/plan"
	"github.com/misterclayt0n/stride/internal/storage"
	"github.com/misterclayt0n/stride/internal/utils"
)

var forceReplace bool

var createProgramCmd = &cobra.Command{
	Use:   "create-program [file]",
	Short: "Generate a program from a TOML settings file (defaults to the last settings used)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			st  *models.SettingsTOML
			err error
		)
		if len(args) == 1 {
			st, err = utils.ParseSettingsFromTOML(args[0])
		} else {
			if !utils.LastSettingsExist() {
				return fmt.Errorf("no settings file given and no previous settings found")
			}
			st, err = utils.LoadLastSettings()
		}
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		cfg, store, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		return generateAndSave(cmd.Context(), cfg, store, st, forceReplace)
	},
}

// generateAndSave builds a program from st, stores it as the active program
// and prints its overview.
func generateAndSave(ctx context.Context, cfg *config.Config, store *storage.Storage, st *models.SettingsTOML, force bool) error {
	if !force {
		exists, err := store.HasActiveProgram(ctx)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("a program is already active, archive it with `stride delete-program` or pass --force")
		}
	}

	settings, err := utils.SettingsFromTOML(st)
	if err != nil {
		return err
	}
	if st.Course != "" {
		summary, err := course.LoadGPX(st.Course)
		if err != nil {
			return err
		}
		settings.RaceInfo = &models.RaceInfo{Name: settings.RaceName, Date: settings.RaceDate, Elevation: summary.Uphill}
		fmt.Printf("Course: %.2f km, +%.0f m / -%.0f m\n", summary.DistanceKm, summary.Uphill, summary.Downhill)
	}

	if settings.RaceDate.Before(time.Now()) {
		log.Printf("WARN: [Plan] race date %s is in the past, building a %d week plan", st.RaceDate, cfg.Plan.MinWeeks)
	}

	p := plan.NewGenerator(cfg.Plan).Generate(settings)
	if err := store.SaveActiveProgram(ctx, p); err != nil {
		return err
	}
	if err := utils.SaveLastSettings(st); err != nil {
		log.Printf("WARN: [Plan] failed to remember settings: %v", err)
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Printf("✅ %s: %d week plan for %s (%s, %s)\n", green("Program created"), p.TotalWeeks, p.Distance, p.Level, p.RaceName)
	fmt.Printf("   VMA %.1f km/h, %d sessions per week, race on %s\n", p.VMA, p.SessionsPerWeek, p.RaceDate.Format(utils.DateLayout))
	return nil
}

func init() {
	rootCmd.AddCommand(createProgramCmd)
	createProgramCmd.Flags().BoolVarP(&forceReplace, "force", "f", false, "Replace the active program without archiving it")
}
