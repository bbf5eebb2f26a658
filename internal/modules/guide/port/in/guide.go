package in

import (
	"context"

	"chestdef/internal/modules/guide/dto"
)

type Usecase interface {
	Legal(ctx context.Context, locale string, width int) (dto.Page, error)
	Food(ctx context.Context, locale string, width int) (dto.Page, error)
	Exercise(ctx context.Context, exerciseID, locale string, width int) (dto.Page, error)
}
