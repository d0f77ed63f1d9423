package export

import (
	"fmt"
	"io"
	"time"

	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/proto"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/plan"
)

const maxStepNotes = 50

// SessionFIT writes a session as a FIT workout file. Each block becomes one
// step: timed when the block has a duration, open (lap button) otherwise, with
// a speed target derived from the block effort and vma.
func SessionFIT(w io.Writer, s models.Session, vma float64, created time.Time) error {
	if s.Type.IsRest() {
		return fmt.Errorf("session %s is a rest day", s.ID)
	}

	fit := proto.FIT{}

	fileID := mesgdef.FileId{
		Type:         typedef.FileWorkout,
		Manufacturer: typedef.ManufacturerDevelopment,
		Product:      0,
		SerialNumber: 1,
		TimeCreated:  created,
	}
	fit.Messages = append(fit.Messages, fileID.ToMesg(nil))

	steps := make([]*mesgdef.WorkoutStep, 0, len(s.Structure))
	for _, b := range s.Structure {
		if b.Kind == models.BlockInfo {
			continue
		}
		steps = append(steps, workoutStep(len(steps), b, vma))
	}
	if len(steps) == 0 {
		return fmt.Errorf("session %s has no workout step", s.ID)
	}

	workout := mesgdef.Workout{
		WktName:       s.Title,
		Sport:         typedef.SportRunning,
		NumValidSteps: uint16(len(steps)),
	}
	fit.Messages = append(fit.Messages, workout.ToMesg(nil))
	for _, st := range steps {
		fit.Messages = append(fit.Messages, st.ToMesg(nil))
	}

	if err := encoder.New(w).Encode(&fit); err != nil {
		return fmt.Errorf("failed to encode FIT workout: %w", err)
	}
	return nil
}

func workoutStep(index int, b models.WorkoutBlock, vma float64) *mesgdef.WorkoutStep {
	step := &mesgdef.WorkoutStep{
		MessageIndex: typedef.MessageIndex(index),
		WktStepName:  string(b.Kind),
		Notes:        truncate(b.Details, maxStepNotes),
		Intensity:    intensityOf(b.Kind),
		DurationType: typedef.WktStepDurationOpen,
		TargetType:   typedef.WktStepTargetOpen,
	}

	if b.Duration != nil && *b.Duration > 0 {
		step.DurationType = typedef.WktStepDurationTime
		step.DurationValue = uint32(*b.Duration) * 60 * 1000 // ms
	}

	if b.Effort != nil {
		low, high := plan.SpeedAt(vma, b.Effort.Low), plan.SpeedAt(vma, b.Effort.High)
		if low > 0 && high > 0 {
			// Custom range: target value 0, bounds in mm/s.
			step.TargetType = typedef.WktStepTargetSpeed
			step.TargetValue = 0
			step.CustomTargetValueLow = mmPerSecond(low)
			step.CustomTargetValueHigh = mmPerSecond(high)
		}
	}
	return step
}

func intensityOf(k models.BlockKind) typedef.Intensity {
	switch k {
	case models.BlockWarmup:
		return typedef.IntensityWarmup
	case models.BlockCooldown:
		return typedef.IntensityCooldown
	case models.BlockMainSet:
		return typedef.IntensityActive
	default:
		return typedef.IntensityRest
	}
}

func mmPerSecond(kmh float64) uint32 {
	return uint32(kmh / 3.6 * 1000)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
