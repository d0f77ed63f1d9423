package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/utils"
)

var profileFlags struct {
	name, email, level, birthDate string
	vma, weight, height           float64
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the athlete profile (level and VMA seed new programs)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.LoadProfile(ctx)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		changed := false
		if f.Changed("name") {
			p.Name, changed = profileFlags.name, true
		}
		if f.Changed("email") {
			p.Email, changed = profileFlags.email, true
		}
		if f.Changed("level") {
			level, err := models.ParseLevel(profileFlags.level)
			if err != nil {
				return err
			}
			p.Level, changed = level, true
		}
		if f.Changed("vma") {
			p.VMA, changed = profileFlags.vma, true
		}
		if f.Changed("weight") {
			p.Weight, changed = profileFlags.weight, true
		}
		if f.Changed("height") {
			p.Height, changed = profileFlags.height, true
		}
		if f.Changed("birth-date") {
			if _, err := utils.ParseDate(profileFlags.birthDate); err != nil {
				return err
			}
			p.BirthDate, changed = profileFlags.birthDate, true
		}

		if changed {
			if err := st.SaveProfile(ctx, p); err != nil {
				return err
			}
			fmt.Println("✅ Profile updated")
		}

		printBoxedHeader("PROFILE")
		printMetric("Name", p.Name)
		printMetric("Email", p.Email)
		printMetric("Level", p.Level)
		printMetric("VMA", fmt.Sprintf("%.1f km/h", p.VMA))
		printMetric("Weight", fmt.Sprintf("%.1f kg", p.Weight))
		printMetric("Height", fmt.Sprintf("%.0f cm", p.Height))
		printMetric("Birth date", p.BirthDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	f := profileCmd.Flags()
	f.StringVar(&profileFlags.name, "name", "", "Name")
	f.StringVar(&profileFlags.email, "email", "", "Email")
	f.StringVar(&profileFlags.level, "level", "", "Level: beginner, intermediate or advanced")
	f.Float64Var(&profileFlags.vma, "vma", 0, "VMA in km/h")
	f.Float64Var(&profileFlags.weight, "weight", 0, "Weight in kg")
	f.Float64Var(&profileFlags.height, "height", 0, "Height in cm")
	f.StringVar(&profileFlags.birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
}
