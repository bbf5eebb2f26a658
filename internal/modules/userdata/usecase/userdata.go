package usecase

import (
	"context"

	"chestdef/internal/modules/userdata/domain"
	"chestdef/internal/modules/userdata/dto"
	userdatain "chestdef/internal/modules/userdata/port/in"
	"chestdef/internal/modules/userdata/service"
)

type Interactor struct {
	svc *service.UserDataService
}

func NewInteractor(svc *service.UserDataService) userdatain.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) dto.DataOutput {
	data := i.svc.Data(ctx)
	out := dto.DataOutput{
		Favorites:     append([]string{}, data.Favorites...),
		Notes:         make(map[string]string, len(data.Notes)),
		CustomPlans:   i.Plans(ctx),
		ActiveWorkout: append([]string{}, data.ActiveWorkout...),
	}
	for k, v := range data.Notes {
		out.Notes[k] = v
	}
	return out
}

func (i *Interactor) IsFavorite(ctx context.Context, exerciseID string) bool {
	return i.svc.Data(ctx).IsFavorite(exerciseID)
}

func (i *Interactor) ToggleFavorite(ctx context.Context, exerciseID string) (bool, error) {
	return i.svc.ToggleFavorite(ctx, exerciseID)
}

func (i *Interactor) Note(ctx context.Context, exerciseID string) string {
	return i.svc.Data(ctx).Notes[exerciseID]
}

func (i *Interactor) SetNote(ctx context.Context, exerciseID, text string) error {
	return i.svc.SetNote(ctx, exerciseID, text)
}

func (i *Interactor) SavePlan(ctx context.Context, input dto.SavePlanInput) (dto.PlanOutput, error) {
	plan, err := i.svc.SavePlan(ctx, input.Name, input.Exercises)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlanOutput(plan), nil
}

func (i *Interactor) DeletePlan(ctx context.Context, planID string) error {
	return i.svc.DeletePlan(ctx, planID)
}

func (i *Interactor) Plans(ctx context.Context) []dto.PlanOutput {
	plans := i.svc.Plans(ctx)
	out := make([]dto.PlanOutput, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanOutput(p))
	}
	return out
}

func (i *Interactor) SetActiveWorkout(ctx context.Context, exerciseIDs []string) error {
	return i.svc.SetActiveWorkout(ctx, exerciseIDs)
}

func (i *Interactor) ClearActiveWorkout(ctx context.Context) error {
	return i.svc.ClearActiveWorkout(ctx)
}

func toPlanOutput(p domain.Plan) dto.PlanOutput {
	return dto.PlanOutput{
		ID:        p.ID,
		Name:      p.Name,
		Exercises: append([]string(nil), p.Exercises...),
		CreatedAt: p.CreatedAt,
	}
}
