package in

import (
	"context"

	"chestdef/internal/modules/guide/dto"
	guidein "chestdef/internal/modules/guide/port/in"
)

type CLIHandler struct {
	usecase guidein.Usecase
}

func NewCLIHandler(usecase guidein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Legal(ctx context.Context, locale string, width int) (dto.Page, error) {
	return h.usecase.Legal(ctx, locale, width)
}

func (h CLIHandler) Food(ctx context.Context, locale string, width int) (dto.Page, error) {
	return h.usecase.Food(ctx, locale, width)
}

func (h CLIHandler) Exercise(ctx context.Context, exerciseID, locale string, width int) (dto.Page, error) {
	return h.usecase.Exercise(ctx, exerciseID, locale, width)
}
