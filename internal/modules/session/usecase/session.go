package usecase

import (
	"context"
	"fmt"
	"strings"

	"chestdef/internal/modules/session/domain"
	sessiondto "chestdef/internal/modules/session/dto"
	sessionin "chestdef/internal/modules/session/port/in"
	sessionout "chestdef/internal/modules/session/port/out"
	"chestdef/internal/modules/session/service"
	timerin "chestdef/internal/modules/timer/port/in"
	apperrors "chestdef/internal/platform/errors"
	"chestdef/internal/platform/logging"
)

type Interactor struct {
	resolver sessionout.WorkoutResolver
	active   sessionout.ActiveWorkoutStore
	timers   timerin.Factory
	logger   *logging.Logger
}

func NewInteractor(resolver sessionout.WorkoutResolver, active sessionout.ActiveWorkoutStore, timers timerin.Factory, logger *logging.Logger) sessionin.Usecase {
	return &Interactor{resolver: resolver, active: active, timers: timers, logger: logger}
}

// Open starts a workout behind the legal gate and records it as the active
// workout.
func (i *Interactor) Open(ctx context.Context, input sessiondto.OpenInput) (sessionin.Session, error) {
	if !input.LegalAccepted {
		return nil, apperrors.ErrLegalNotAccepted
	}
	if strings.TrimSpace(input.WorkoutID) == "" {
		return nil, fmt.Errorf("workout id is required: %w", apperrors.ErrInvalidInput)
	}
	workout, err := i.resolver.Resolve(ctx, input.WorkoutID, input.Locale)
	if err != nil {
		return nil, err
	}
	if i.active != nil {
		ids := make([]string, 0, len(workout.Exercises))
		for _, ex := range workout.Exercises {
			ids = append(ids, ex.ID)
		}
		if err := i.active.SetActive(ctx, ids); err != nil {
			return nil, err
		}
	}
	i.logger.Info("workout opened", "workout_id", workout.ID, "slots", len(workout.Exercises))
	return &session{ctrl: service.NewController(workout, i.timers, i.active, i.logger)}, nil
}

type session struct {
	ctrl *service.Controller
}

func (s *session) Snapshot() sessiondto.SessionOutput {
	w := s.ctrl.Workout()
	out := sessiondto.SessionOutput{WorkoutID: w.ID, Title: w.Title, Sets: w.Sets, Expanded: s.ctrl.Expanded()}
	for _, slot := range s.ctrl.Slots() {
		out.Slots = append(out.Slots, sessiondto.SlotOutput{
			Position:      slot.Position,
			Exercise:      toExerciseOutput(slot.Exercise),
			Expanded:      slot.Position == out.Expanded,
			VideoFinished: slot.VideoFinished,
		})
	}
	return out
}

func (s *session) ToggleExpanded(position int) error { return s.ctrl.ToggleExpanded(position) }

func (s *session) AcknowledgeVideoReset(position int) error {
	return s.ctrl.AcknowledgeVideoReset(position)
}

func (s *session) Timer() (timerin.Usecase, bool) { return s.ctrl.Timer() }

func (s *session) OnVideoFinished(fn func(position int, finished bool)) {
	s.ctrl.OnFinished(fn)
}

func (s *session) Complete(ctx context.Context) error { return s.ctrl.Complete(ctx) }

func (s *session) Dispose() { s.ctrl.Dispose() }

func toExerciseOutput(ex domain.Exercise) sessiondto.ExerciseOutput {
	return sessiondto.ExerciseOutput{
		ID:               ex.ID,
		Name:             ex.Name,
		ShortDescription: ex.ShortDescription,
		Objective:        ex.Objective,
		QuickFix:         ex.QuickFix,
		Steps:            append([]string(nil), ex.Steps...),
		VideoURL:         ex.VideoURL,
	}
}
