package in

import (
	"context"

	"chestdef/internal/modules/catalog/dto"
)

type Usecase interface {
	Exercise(ctx context.Context, id, locale string) (dto.ExerciseOutput, error)
	Workout(ctx context.Context, id, locale string) (dto.WorkoutOutput, error)
	Workouts(ctx context.Context, locale string) ([]dto.WorkoutOutput, error)
	Resolve(ctx context.Context, workoutID, locale string) (dto.ResolvedWorkout, error)
	T(key, locale string) string
	Locales() []string
}
