package usecase

import (
	"fmt"
	"strings"

	"chestdef/internal/modules/nutrition/domain"
	"chestdef/internal/modules/nutrition/dto"
	nutritionin "chestdef/internal/modules/nutrition/port/in"
)

type Interactor struct{}

func NewInteractor() nutritionin.Usecase {
	return Interactor{}
}

func (Interactor) Calculate(input dto.CalculateInput) (dto.CalculateOutput, error) {
	profile := domain.Profile{
		Sex:        domain.Sex(strings.ToLower(strings.TrimSpace(input.Sex))),
		Age:        input.Age,
		WeightKg:   input.WeightKg,
		HeightCm:   input.HeightCm,
		Multiplier: input.Multiplier,
	}
	res, err := domain.Calculate(profile)
	if err != nil {
		return dto.CalculateOutput{}, fmt.Errorf("calculate tdee: %w", err)
	}
	levels, err := domain.Compare(profile)
	if err != nil {
		return dto.CalculateOutput{}, fmt.Errorf("compare activity levels: %w", err)
	}
	out := dto.CalculateOutput{
		BMR:      res.BMR,
		TDEE:     res.TDEE,
		Cutting:  res.Cutting,
		ProteinG: res.Macros.ProteinG,
		FatG:     res.Macros.FatG,
		CarbsG:   res.Macros.CarbsG,
	}
	for _, est := range levels {
		out.Levels = append(out.Levels, dto.LevelOutput{Key: est.Level.Key, Multiplier: est.Level.Multiplier, TDEE: est.TDEE})
	}
	return out, nil
}

func (Interactor) Levels() []dto.LevelOutput {
	out := make([]dto.LevelOutput, 0, len(domain.ActivityLevels))
	for _, level := range domain.ActivityLevels {
		out = append(out, dto.LevelOutput{Key: level.Key, Multiplier: level.Multiplier})
	}
	return out
}
