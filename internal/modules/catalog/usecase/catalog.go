package usecase

import (
	"context"

	"chestdef/internal/modules/catalog/domain"
	"chestdef/internal/modules/catalog/dto"
	catalogin "chestdef/internal/modules/catalog/port/in"
	"chestdef/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Exercise(ctx context.Context, id, locale string) (dto.ExerciseOutput, error) {
	ex, err := i.svc.Exercise(ctx, id)
	if err != nil {
		return dto.ExerciseOutput{}, err
	}
	return toExerciseOutput(ex, locale), nil
}

func (i *Interactor) Workout(ctx context.Context, id, locale string) (dto.WorkoutOutput, error) {
	w, err := i.svc.Workout(ctx, id)
	if err != nil {
		return dto.WorkoutOutput{}, err
	}
	return toWorkoutOutput(w, locale), nil
}

func (i *Interactor) Workouts(ctx context.Context, locale string) ([]dto.WorkoutOutput, error) {
	workouts, err := i.svc.Workouts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkoutOutput, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, toWorkoutOutput(w, locale))
	}
	return out, nil
}

func (i *Interactor) Resolve(ctx context.Context, workoutID, locale string) (dto.ResolvedWorkout, error) {
	w, exercises, err := i.svc.Resolve(ctx, workoutID)
	if err != nil {
		return dto.ResolvedWorkout{}, err
	}
	out := dto.ResolvedWorkout{Workout: toWorkoutOutput(w, locale)}
	for _, ex := range exercises {
		out.Exercises = append(out.Exercises, toExerciseOutput(ex, locale))
	}
	return out, nil
}

func (i *Interactor) T(key, locale string) string {
	return i.svc.T(key, locale)
}

func (i *Interactor) Locales() []string {
	return i.svc.Locales()
}

func toExerciseOutput(ex domain.Exercise, locale string) dto.ExerciseOutput {
	return dto.ExerciseOutput{
		ID:               ex.ID,
		Icon:             ex.Icon,
		Category:         ex.Category,
		Name:             ex.Name.In(locale),
		ShortDescription: ex.ShortDescription.In(locale),
		Objective:        ex.Objective.In(locale),
		QuickFix:         ex.QuickFix.In(locale),
		CompareTip:       ex.CompareTip.In(locale),
		Steps:            ex.StepsIn(locale),
		VideoURL:         ex.VideoURL,
	}
}

func toWorkoutOutput(w domain.Workout, locale string) dto.WorkoutOutput {
	return dto.WorkoutOutput{
		ID:          w.ID,
		Title:       w.Title.In(locale),
		Frequency:   w.Frequency,
		Sets:        w.Sets,
		ExerciseIDs: append([]string(nil), w.Exercises...),
	}
}
