package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	catalogout "chestdef/internal/modules/catalog/adapter/out"
	catalogservice "chestdef/internal/modules/catalog/service"
	catalogusecase "chestdef/internal/modules/catalog/usecase"
	"chestdef/internal/modules/guide/service"
	apperrors "chestdef/internal/platform/errors"
)

type upperRenderer struct {
	widths []int
	fail   bool
}

func (r *upperRenderer) Render(md string, width int) (string, error) {
	r.widths = append(r.widths, width)
	if r.fail {
		return "", errors.New("boom")
	}
	return strings.ToUpper(md), nil
}

func newService(r *upperRenderer) *service.GuideService {
	catalog := catalogusecase.NewInteractor(catalogservice.NewCatalogService(catalogout.NewEmbeddedContent(), nil))
	return service.NewGuideService(catalog, r, nil)
}

func TestLegalPageIsLocalized(t *testing.T) {
	t.Parallel()
	r := &upperRenderer{}
	svc := newService(r)
	page := svc.Legal(context.Background(), "en", 72)
	if !strings.HasPrefix(page.Markdown, "# MANDATORY NOTICE") {
		t.Fatalf("unexpected legal markdown:\n%s", page.Markdown)
	}
	if page.Rendered != strings.ToUpper(page.Markdown) || len(r.widths) != 1 || r.widths[0] != 72 {
		t.Fatalf("renderer not applied: widths=%v", r.widths)
	}
	pt := svc.Legal(context.Background(), "pt", 72)
	if !strings.Contains(pt.Markdown, "AVISO OBRIGATÓRIO") {
		t.Fatalf("portuguese title missing:\n%s", pt.Markdown)
	}
}

func TestFoodPageFallsBackToMarkdownOnRenderError(t *testing.T) {
	t.Parallel()
	svc := newService(&upperRenderer{fail: true})
	page := svc.Food(context.Background(), "en", 60)
	if page.Rendered != page.Markdown {
		t.Fatalf("expected markdown fallback")
	}
	if !strings.Contains(page.Markdown, "1. **Increase Protein:**") {
		t.Fatalf("pillars missing:\n%s", page.Markdown)
	}
}

func TestExercisePage(t *testing.T) {
	t.Parallel()
	svc := newService(&upperRenderer{})
	page, err := svc.Exercise(context.Background(), "polichinelos", "pt", 60)
	if err != nil {
		t.Fatalf("exercise: %v", err)
	}
	if !strings.Contains(page.Markdown, "1. ") || page.Title == "" {
		t.Fatalf("steps missing:\n%s", page.Markdown)
	}
	if _, err := svc.Exercise(context.Background(), "missing", "pt", 60); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
