package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"chestdef/internal/modules/catalog/domain"
	catalogout "chestdef/internal/modules/catalog/port/out"
	apperrors "chestdef/internal/platform/errors"
	"chestdef/internal/platform/logging"
	"chestdef/internal/platform/slug"
)

type CatalogService struct {
	source catalogout.ContentSource
	logger *logging.Logger

	mu           sync.Mutex
	loaded       bool
	exercises    map[string]domain.Exercise
	workouts     []domain.Workout
	translations domain.Translations
}

func NewCatalogService(source catalogout.ContentSource, logger *logging.Logger) *CatalogService {
	return &CatalogService{source: source, logger: logger}
}

func (s *CatalogService) Exercise(ctx context.Context, id string) (domain.Exercise, error) {
	if err := s.load(ctx); err != nil {
		return domain.Exercise{}, err
	}
	if ex, ok := s.exercises[id]; ok {
		return ex, nil
	}
	want := slug.Make(id)
	for _, ex := range s.exercises {
		for _, name := range ex.Name {
			if slug.Make(name) == want {
				return ex, nil
			}
		}
	}
	return domain.Exercise{}, fmt.Errorf("exercise %q: %w", id, apperrors.ErrNotFound)
}

func (s *CatalogService) Workout(ctx context.Context, id string) (domain.Workout, error) {
	if err := s.load(ctx); err != nil {
		return domain.Workout{}, err
	}
	for _, w := range s.workouts {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.Workout{}, fmt.Errorf("workout %q: %w", id, apperrors.ErrNotFound)
}

func (s *CatalogService) Workouts(ctx context.Context) ([]domain.Workout, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return append([]domain.Workout(nil), s.workouts...), nil
}

// Resolve returns the workout's exercises in slot order. Ids missing from
// the catalog are dropped.
func (s *CatalogService) Resolve(ctx context.Context, workoutID string) (domain.Workout, []domain.Exercise, error) {
	workout, err := s.Workout(ctx, workoutID)
	if err != nil {
		return domain.Workout{}, nil, err
	}
	exercises := make([]domain.Exercise, 0, len(workout.Exercises))
	for _, id := range workout.Exercises {
		ex, ok := s.exercises[id]
		if !ok {
			s.logger.Debug("dropping unknown exercise", "workout_id", workoutID, "exercise_id", id)
			continue
		}
		exercises = append(exercises, ex)
	}
	return workout, exercises, nil
}

func (s *CatalogService) T(key, locale string) string {
	if err := s.load(context.Background()); err != nil {
		return key
	}
	return s.translations.T(key, locale)
}

// Locales lists the locales the translation table covers, default first.
func (s *CatalogService) Locales() []string {
	if err := s.load(context.Background()); err != nil {
		return []string{domain.DefaultLocale}
	}
	seen := map[string]bool{domain.DefaultLocale: true}
	var rest []string
	for _, text := range s.translations {
		for locale := range text {
			if !seen[locale] {
				seen[locale] = true
				rest = append(rest, locale)
			}
		}
	}
	sort.Strings(rest)
	return append([]string{domain.DefaultLocale}, rest...)
}

func (s *CatalogService) load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	exercises, err := s.source.Exercises(ctx)
	if err != nil {
		return fmt.Errorf("load exercises: %w", err)
	}
	workouts, err := s.source.Workouts(ctx)
	if err != nil {
		return fmt.Errorf("load workouts: %w", err)
	}
	translations, err := s.source.Translations(ctx)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	s.exercises = make(map[string]domain.Exercise, len(exercises))
	for _, ex := range exercises {
		s.exercises[ex.ID] = ex
	}
	s.workouts = workouts
	s.translations = translations
	s.loaded = true
	s.logger.Debug("catalog loaded", "exercises", len(exercises), "workouts", len(workouts), "keys", len(translations))
	return nil
}
