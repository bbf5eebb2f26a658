package out

import (
	"context"

	sessionout "chestdef/internal/modules/session/port/out"
	userdatain "chestdef/internal/modules/userdata/port/in"
)

type UserDataActiveStore struct {
	userdata userdatain.Usecase
}

func NewUserDataActiveStore(userdata userdatain.Usecase) sessionout.ActiveWorkoutStore {
	return &UserDataActiveStore{userdata: userdata}
}

func (s *UserDataActiveStore) SetActive(ctx context.Context, exerciseIDs []string) error {
	return s.userdata.SetActiveWorkout(ctx, exerciseIDs)
}

func (s *UserDataActiveStore) ClearActive(ctx context.Context) error {
	return s.userdata.ClearActiveWorkout(ctx)
}
