package usecase

import (
	"context"

	"chestdef/internal/modules/guide/dto"
	guidein "chestdef/internal/modules/guide/port/in"
	"chestdef/internal/modules/guide/service"
)

type Interactor struct {
	svc *service.GuideService
}

func NewInteractor(svc *service.GuideService) guidein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Legal(ctx context.Context, locale string, width int) (dto.Page, error) {
	return i.svc.Legal(ctx, locale, width), nil
}

func (i *Interactor) Food(ctx context.Context, locale string, width int) (dto.Page, error) {
	return i.svc.Food(ctx, locale, width), nil
}

func (i *Interactor) Exercise(ctx context.Context, exerciseID, locale string, width int) (dto.Page, error) {
	return i.svc.Exercise(ctx, exerciseID, locale, width)
}
