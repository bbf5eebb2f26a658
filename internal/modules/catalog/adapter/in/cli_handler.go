package in

import (
	"context"

	"chestdef/internal/modules/catalog/dto"
	catalogin "chestdef/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListWorkouts(ctx context.Context, locale string) ([]dto.WorkoutOutput, error) {
	return h.usecase.Workouts(ctx, locale)
}

func (h CLIHandler) ShowWorkout(ctx context.Context, id, locale string) (dto.ResolvedWorkout, error) {
	return h.usecase.Resolve(ctx, id, locale)
}

func (h CLIHandler) ShowExercise(ctx context.Context, id, locale string) (dto.ExerciseOutput, error) {
	return h.usecase.Exercise(ctx, id, locale)
}

func (h CLIHandler) T(key, locale string) string {
	return h.usecase.T(key, locale)
}
