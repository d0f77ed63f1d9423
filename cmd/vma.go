package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/plan"
	"github.com/misterclayt0n/stride/internal/utils"
)

var (
	cooperMeters  float64
	vamevalStage  int
	raceKm        int
	raceTime      string
	saveToProfile bool
)

var vmaCmd = &cobra.Command{
	Use:   "vma",
	Short: "Estimate VMA from a half-Cooper test, a VAMEVAL test or a recent race",
	Example: `  stride vma --cooper 1450
  stride vma --vameval 14
  stride vma --race-km 10 --race-time 48:30 --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			vma    float64
			source string
		)
		switch {
		case cooperMeters > 0:
			vma, source = utils.VMAFromHalfCooper(cooperMeters), "half-Cooper"
		case cmd.Flags().Changed("vameval"):
			vma, source = utils.VMAFromVameval(vamevalStage), "VAMEVAL"
		case raceTime != "":
			d, err := parseClock(raceTime)
			if err != nil {
				return err
			}
			vma, err = utils.VMAFromRaceTime(raceKm, d)
			if err != nil {
				return err
			}
			source = fmt.Sprintf("%d km race", raceKm)
		default:
			return fmt.Errorf("pass one of --cooper, --vameval or --race-time")
		}
		if vma <= 0 {
			return fmt.Errorf("no VMA estimate from the %s input", source)
		}

		fmt.Printf("Estimated VMA (%s): %.2f km/h\n", source, vma)
		fmt.Printf("  Easy:      %s\n", plan.PaceRange(vma, 65, 70))
		fmt.Printf("  Threshold: %s\n", plan.PaceRange(vma, 80, 85))
		fmt.Printf("  VMA:       %s/km\n", plan.PaceAt(vma, 100))

		if !saveToProfile {
			return nil
		}
		_, st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := st.LoadProfile(cmd.Context())
		if err != nil {
			return err
		}
		profile.VMA = vma
		if err := st.SaveProfile(cmd.Context(), profile); err != nil {
			return err
		}
		fmt.Println("✅ VMA saved to profile")
		return nil
	},
}

// parseClock reads mm:ss or h:mm:ss.
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q, expected mm:ss or h:mm:ss", s)
	}

	var total time.Duration
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q, expected mm:ss or h:mm:ss", s)
		}
		total = total*60 + time.Duration(n)
	}
	return total * time.Second, nil
}

func init() {
	rootCmd.AddCommand(vmaCmd)
	vmaCmd.Flags().Float64Var(&cooperMeters, "cooper", 0, "Meters covered in 6 minutes")
	vmaCmd.Flags().IntVar(&vamevalStage, "vameval", 0, "Last completed VAMEVAL stage")
	vmaCmd.Flags().IntVar(&raceKm, "race-km", 10, "Race distance in km (5 or 10)")
	vmaCmd.Flags().StringVar(&raceTime, "race-time", "", "Race time, mm:ss or h:mm:ss")
	vmaCmd.Flags().BoolVar(&saveToProfile, "save", false, "Store the estimate in the profile")
}
