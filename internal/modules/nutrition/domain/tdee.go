package domain

import (
	"fmt"
	"math"

	apperrors "chestdef/internal/platform/errors"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// CuttingDeficit is subtracted from maintenance calories for fat loss.
const CuttingDeficit = 500

type ActivityLevel struct {
	Key        string
	Multiplier float64
}

// ActivityLevels are the Mifflin-St Jeor multipliers, least active first.
var ActivityLevels = []ActivityLevel{
	{Key: "activitySedentary", Multiplier: 1.2},
	{Key: "activityLight", Multiplier: 1.375},
	{Key: "activityModerate", Multiplier: 1.55},
	{Key: "activityVery", Multiplier: 1.725},
	{Key: "activityExtra", Multiplier: 1.9},
}

type Profile struct {
	Sex        Sex
	Age        float64
	WeightKg   float64
	HeightCm   float64
	Multiplier float64
}

func (p Profile) Validate() error {
	if err := p.validateBody(); err != nil {
		return err
	}
	if p.Multiplier <= 0 {
		return fmt.Errorf("activity multiplier must be positive: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

// validateBody checks everything but the activity multiplier.
func (p Profile) validateBody() error {
	switch p.Sex {
	case SexMale, SexFemale:
	default:
		return fmt.Errorf("unsupported sex %q: %w", string(p.Sex), apperrors.ErrInvalidInput)
	}
	if p.Age <= 0 || p.WeightKg <= 0 || p.HeightCm <= 0 {
		return fmt.Errorf("age, weight and height must be positive: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

type Macros struct {
	ProteinG float64
	FatG     int
	CarbsG   int
}

type Result struct {
	BMR     float64
	TDEE    int
	Cutting int
	Macros  Macros
}

type LevelEstimate struct {
	Level ActivityLevel
	TDEE  int
}

func BMR(p Profile) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*p.Age
	if p.Sex == SexMale {
		return bmr + 5
	}
	return bmr - 161
}

func Calculate(p Profile) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	bmr := BMR(p)
	// float64() keeps the product from being fused into the rounding add.
	tdee := round(float64(bmr * p.Multiplier))
	cutting := tdee - CuttingDeficit
	protein := p.WeightKg * 2
	fat := round(p.WeightKg * 0.8)
	carbs := round((float64(cutting) - protein*4 - float64(fat)*9) / 4)
	return Result{
		BMR:     bmr,
		TDEE:    tdee,
		Cutting: cutting,
		Macros:  Macros{ProteinG: protein, FatG: fat, CarbsG: carbs},
	}, nil
}

// Compare estimates maintenance calories at every activity level. The
// profile's own multiplier is ignored.
func Compare(p Profile) ([]LevelEstimate, error) {
	if err := p.validateBody(); err != nil {
		return nil, err
	}
	bmr := BMR(p)
	out := make([]LevelEstimate, 0, len(ActivityLevels))
	for _, level := range ActivityLevels {
		out = append(out, LevelEstimate{Level: level, TDEE: round(float64(bmr * level.Multiplier))})
	}
	return out, nil
}

// round is half-up, matching how the calculator has always displayed values.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
