package service

import (
	"context"
	"fmt"

	catalogin "chestdef/internal/modules/catalog/port/in"
	"chestdef/internal/modules/guide/domain"
	"chestdef/internal/modules/guide/dto"
	guideout "chestdef/internal/modules/guide/port/out"
	"chestdef/internal/platform/logging"
)

// GuideService builds instructional pages from catalog text. A page whose
// rendering fails still carries its Markdown as the rendered text.
type GuideService struct {
	catalog  catalogin.Usecase
	renderer guideout.Renderer
	logger   *logging.Logger
}

func NewGuideService(catalog catalogin.Usecase, renderer guideout.Renderer, logger *logging.Logger) *GuideService {
	return &GuideService{catalog: catalog, renderer: renderer, logger: logger}
}

func (s *GuideService) Legal(_ context.Context, locale string, width int) dto.Page {
	return s.page(domain.Legal(s.translator(locale)), width)
}

func (s *GuideService) Food(_ context.Context, locale string, width int) dto.Page {
	return s.page(domain.Food(s.translator(locale)), width)
}

func (s *GuideService) Exercise(ctx context.Context, exerciseID, locale string, width int) (dto.Page, error) {
	ex, err := s.catalog.Exercise(ctx, exerciseID, locale)
	if err != nil {
		return dto.Page{}, fmt.Errorf("exercise guide: %w", err)
	}
	doc := domain.Exercise(s.translator(locale), domain.ExerciseContent{
		Icon:             ex.Icon,
		Name:             ex.Name,
		ShortDescription: ex.ShortDescription,
		Objective:        ex.Objective,
		QuickFix:         ex.QuickFix,
		Steps:            ex.Steps,
	})
	return s.page(doc, width), nil
}

func (s *GuideService) translator(locale string) domain.Translate {
	return func(key string) string { return s.catalog.T(key, locale) }
}

func (s *GuideService) page(doc domain.Document, width int) dto.Page {
	md := doc.Markdown()
	out := dto.Page{Title: doc.Title, Markdown: md, Rendered: md}
	if s.renderer == nil {
		return out
	}
	rendered, err := s.renderer.Render(md, width)
	if err != nil {
		s.logger.Warn("render guide", "title", doc.Title, "error", err.Error())
		return out
	}
	out.Rendered = rendered
	return out
}
