package in

import "chestdef/internal/modules/nutrition/dto"

type Usecase interface {
	Calculate(input dto.CalculateInput) (dto.CalculateOutput, error)
	Levels() []dto.LevelOutput
}
