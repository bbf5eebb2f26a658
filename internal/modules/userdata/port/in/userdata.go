package in

import (
	"context"

	"chestdef/internal/modules/userdata/dto"
)

type Usecase interface {
	Load(ctx context.Context) dto.DataOutput
	IsFavorite(ctx context.Context, exerciseID string) bool
	ToggleFavorite(ctx context.Context, exerciseID string) (bool, error)
	Note(ctx context.Context, exerciseID string) string
	SetNote(ctx context.Context, exerciseID, text string) error
	SavePlan(ctx context.Context, input dto.SavePlanInput) (dto.PlanOutput, error)
	DeletePlan(ctx context.Context, planID string) error
	Plans(ctx context.Context) []dto.PlanOutput
	SetActiveWorkout(ctx context.Context, exerciseIDs []string) error
	ClearActiveWorkout(ctx context.Context) error
}
