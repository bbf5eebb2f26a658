package in

import (
	"context"

	"chestdef/internal/modules/userdata/dto"
	userdatain "chestdef/internal/modules/userdata/port/in"
)

type CLIHandler struct {
	usecase userdatain.Usecase
}

func NewCLIHandler(usecase userdatain.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) dto.DataOutput {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) ToggleFavorite(ctx context.Context, exerciseID string) (bool, error) {
	return h.usecase.ToggleFavorite(ctx, exerciseID)
}

func (h CLIHandler) SetNote(ctx context.Context, exerciseID, text string) error {
	return h.usecase.SetNote(ctx, exerciseID, text)
}

func (h CLIHandler) SavePlan(ctx context.Context, name string, exercises []string) (dto.PlanOutput, error) {
	return h.usecase.SavePlan(ctx, dto.SavePlanInput{Name: name, Exercises: exercises})
}

func (h CLIHandler) DeletePlan(ctx context.Context, planID string) error {
	return h.usecase.DeletePlan(ctx, planID)
}

func (h CLIHandler) Plans(ctx context.Context) []dto.PlanOutput {
	return h.usecase.Plans(ctx)
}
