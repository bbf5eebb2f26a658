package out

import (
	"context"

	catalogin "chestdef/internal/modules/catalog/port/in"
	"chestdef/internal/modules/session/domain"
	sessionout "chestdef/internal/modules/session/port/out"
)

type CatalogResolver struct {
	catalog catalogin.Usecase
}

func NewCatalogResolver(catalog catalogin.Usecase) sessionout.WorkoutResolver {
	return &CatalogResolver{catalog: catalog}
}

func (r *CatalogResolver) Resolve(ctx context.Context, workoutID, locale string) (domain.Workout, error) {
	resolved, err := r.catalog.Resolve(ctx, workoutID, locale)
	if err != nil {
		return domain.Workout{}, err
	}
	out := domain.Workout{ID: resolved.Workout.ID, Title: resolved.Workout.Title, Sets: resolved.Workout.Sets}
	for _, ex := range resolved.Exercises {
		out.Exercises = append(out.Exercises, domain.Exercise{
			ID:               ex.ID,
			Name:             ex.Name,
			ShortDescription: ex.ShortDescription,
			Objective:        ex.Objective,
			QuickFix:         ex.QuickFix,
			Steps:            ex.Steps,
			VideoURL:         ex.VideoURL,
		})
	}
	return out, nil
}
