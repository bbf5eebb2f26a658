package out

import (
	"context"

	"chestdef/internal/modules/session/domain"
)

type WorkoutResolver interface {
	Resolve(ctx context.Context, workoutID, locale string) (domain.Workout, error)
}

type ActiveWorkoutStore interface {
	SetActive(ctx context.Context, exerciseIDs []string) error
	ClearActive(ctx context.Context) error
}
