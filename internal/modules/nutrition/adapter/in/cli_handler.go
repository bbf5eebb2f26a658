package in

import (
	"chestdef/internal/modules/nutrition/dto"
	nutritionin "chestdef/internal/modules/nutrition/port/in"
)

type CLIHandler struct {
	usecase nutritionin.Usecase
}

func NewCLIHandler(usecase nutritionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Calculate(sex string, age, weightKg, heightCm, multiplier float64) (dto.CalculateOutput, error) {
	return h.usecase.Calculate(dto.CalculateInput{Sex: sex, Age: age, WeightKg: weightKg, HeightCm: heightCm, Multiplier: multiplier})
}
