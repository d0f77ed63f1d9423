package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/adapt"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/plan"
)

var (
	adaptApply      bool
	adaptRegenerate bool
	adaptForce      bool
	adaptPercent    float64
)

var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Check recent feedback and lower the training intensity when sessions keep feeling hard",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		rule := cfg.Adapt
		if adaptPercent > 0 {
			rule.Reduction = adaptPercent
		}
		sg := adapt.Detect(prog, rule)

		yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
		if sg.Reduce {
			fmt.Printf("%s the last %d completed sessions were rated hard: %v\n", yellow("Fatigue detected:"), len(sg.Sessions), sg.Sessions)
			fmt.Printf("Suggested VMA: %.1f -> %.1f km/h (-%.0f%%)\n", prog.VMA, sg.NewVMA, sg.Reduction)
		} else {
			fmt.Printf("No adjustment needed (%d hard session(s) in a row, %d trigger a reduction)\n", sg.Hard, rule.WithDefaults().Window)
		}

		if !adaptApply && !adaptRegenerate {
			return nil
		}
		if !sg.Reduce && !adaptForce {
			return fmt.Errorf("nothing to apply, pass --force to reduce anyway")
		}

		var updated *models.Program
		if adaptRegenerate {
			// A new program replaces the active one; progress is not carried over.
			settings := prog.Settings
			settings.VMA = adapt.ReduceVMA(prog.VMA, rule.WithDefaults().Reduction)
			gen := plan.NewGenerator(cfg.Plan)
			gen.Now = time.Now
			updated = gen.Generate(settings)
		} else {
			updated = adapt.Apply(prog, rule.WithDefaults().Reduction)
		}

		if err := st.SaveActiveProgram(ctx, updated); err != nil {
			return err
		}
		fmt.Printf("✅ VMA set to %.1f km/h", updated.VMA)
		if adaptRegenerate {
			fmt.Printf(", program regenerated (%d weeks)", updated.TotalWeeks)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adaptCmd)
	adaptCmd.Flags().BoolVar(&adaptApply, "apply", false, "Lower the program VMA; paces are recomputed on display")
	adaptCmd.Flags().BoolVar(&adaptRegenerate, "regenerate", false, "Rebuild the whole program with the lower VMA")
	adaptCmd.Flags().BoolVar(&adaptForce, "force", false, "Apply the reduction even without a fatigue signal")
	adaptCmd.Flags().Float64Var(&adaptPercent, "percent", 0, "Reduction in percent (defaults to the configured value)")
}
