package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/plan"
)

var paceCmd = &cobra.Command{
	Use:   "pace [vma] [percent]",
	Short: "Convert a share of VMA into a pace per km (prints a table without percent)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vma, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid VMA: %s", args[0])
		}

		if len(args) == 2 {
			percent, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid percent: %s", args[1])
			}
			fmt.Printf("%s/km (%.1f km/h)\n", plan.PaceAt(vma, percent), plan.SpeedAt(vma, percent))
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s %.1f km/h\n", cyan("VMA"), vma)
		for percent := 60.0; percent <= 105; percent += 5 {
			fmt.Printf("  %3.0f%%  %7s/km  %5.1f km/h\n", percent, plan.PaceAt(vma, percent), plan.SpeedAt(vma, percent))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paceCmd)
}
