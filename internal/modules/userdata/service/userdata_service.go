package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"chestdef/internal/modules/userdata/domain"
	userdataout "chestdef/internal/modules/userdata/port/out"
	"chestdef/internal/platform/clock"
	apperrors "chestdef/internal/platform/errors"
	"chestdef/internal/platform/id"
	"chestdef/internal/platform/logging"
)

// UserDataService holds the persisted record in memory. It is read once and
// written back after every mutation.
type UserDataService struct {
	store  userdataout.SlotStore
	clock  clock.Clock
	idGen  id.Generator
	logger *logging.Logger

	mu     sync.Mutex
	loaded bool
	data   domain.Data
}

func NewUserDataService(store userdataout.SlotStore, clock clock.Clock, idGen id.Generator, logger *logging.Logger) *UserDataService {
	return &UserDataService{store: store, clock: clock, idGen: idGen, logger: logger}
}

func (s *UserDataService) Data(ctx context.Context) domain.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.data
}

func (s *UserDataService) ToggleFavorite(ctx context.Context, exerciseID string) (bool, error) {
	if strings.TrimSpace(exerciseID) == "" {
		return false, fmt.Errorf("exercise id is required: %w", apperrors.ErrInvalidInput)
	}
	var now bool
	err := s.mutate(ctx, func(d *domain.Data) error {
		now = d.ToggleFavorite(exerciseID)
		return nil
	})
	return now, err
}

func (s *UserDataService) SetNote(ctx context.Context, exerciseID, text string) error {
	if strings.TrimSpace(exerciseID) == "" {
		return fmt.Errorf("exercise id is required: %w", apperrors.ErrInvalidInput)
	}
	return s.mutate(ctx, func(d *domain.Data) error {
		d.SetNote(exerciseID, strings.TrimSpace(text))
		return nil
	})
}

func (s *UserDataService) SavePlan(ctx context.Context, name string, exercises []string) (domain.Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(exercises) == 0 {
		return domain.Plan{}, fmt.Errorf("plan needs a name and at least one exercise: %w", apperrors.ErrInvalidInput)
	}
	plan := domain.Plan{
		ID:        s.idGen.New(),
		Name:      name,
		Exercises: append([]string(nil), exercises...),
		CreatedAt: s.clock.Now(),
	}
	err := s.mutate(ctx, func(d *domain.Data) error {
		plans := make(map[string]domain.Plan, len(d.CustomPlans)+1)
		for k, v := range d.CustomPlans {
			plans[k] = v
		}
		plans[plan.ID] = plan
		d.CustomPlans = plans
		return nil
	})
	if err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

func (s *UserDataService) DeletePlan(ctx context.Context, planID string) error {
	return s.mutate(ctx, func(d *domain.Data) error {
		if _, ok := d.CustomPlans[planID]; !ok {
			return fmt.Errorf("plan %q: %w", planID, apperrors.ErrNotFound)
		}
		plans := make(map[string]domain.Plan, len(d.CustomPlans))
		for k, v := range d.CustomPlans {
			if k != planID {
				plans[k] = v
			}
		}
		d.CustomPlans = plans
		return nil
	})
}

// Plans returns custom plans, oldest first.
func (s *UserDataService) Plans(ctx context.Context) []domain.Plan {
	data := s.Data(ctx)
	plans := make([]domain.Plan, 0, len(data.CustomPlans))
	for _, p := range data.CustomPlans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].ID < plans[j].ID
		}
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})
	return plans
}

func (s *UserDataService) SetActiveWorkout(ctx context.Context, exerciseIDs []string) error {
	return s.mutate(ctx, func(d *domain.Data) error {
		d.ActiveWorkout = append([]string{}, exerciseIDs...)
		return nil
	})
}

func (s *UserDataService) ClearActiveWorkout(ctx context.Context) error {
	return s.mutate(ctx, func(d *domain.Data) error {
		d.ActiveWorkout = []string{}
		return nil
	})
}

func (s *UserDataService) mutate(ctx context.Context, fn func(*domain.Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	next := s.data
	if err := fn(&next); err != nil {
		return err
	}
	next = next.Normalize()
	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal user data: %w", err)
	}
	if err := s.store.Write(ctx, domain.SlotKey, payload); err != nil {
		return err
	}
	s.data = next
	return nil
}

// ensureLoaded falls back to the empty record when the slot is absent or
// unreadable.
func (s *UserDataService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.data = domain.Empty()
	payload, err := s.store.Read(ctx, domain.SlotKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("user data unreadable, using defaults", "error", err.Error())
		return
	}
	var data domain.Data
	if err := json.Unmarshal(payload, &data); err != nil {
		s.logger.Warn("user data malformed, using defaults", "error", err.Error())
		return
	}
	s.data = data.Normalize()
}
