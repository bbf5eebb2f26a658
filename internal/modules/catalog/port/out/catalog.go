package out

import (
	"context"

	"chestdef/internal/modules/catalog/domain"
)

type ContentSource interface {
	Exercises(ctx context.Context) ([]domain.Exercise, error)
	Workouts(ctx context.Context) ([]domain.Workout, error)
	Translations(ctx context.Context) (domain.Translations, error)
}
