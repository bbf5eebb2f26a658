package clock

import (
	"context"
	"sync"
	"time"
)

// Handle is an owned scheduled task. Stop is idempotent; once it returns, the
// task's callback will not run again.
type Handle interface {
	Stop()
}

// Scheduler creates scheduled tasks whose callbacks run on the caller's event
// loop.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
	After(delay time.Duration, fn func()) Handle
}

// Dispatcher hands a callback to the serialized event loop that owns the state
// the callback touches.
type Dispatcher func(func())

// SystemScheduler drives callbacks from wall-clock timers and funnels them
// through a Dispatcher so state is only ever mutated from one loop.
type SystemScheduler struct {
	dispatch Dispatcher
}

func NewSystemScheduler(dispatch Dispatcher) *SystemScheduler {
	return &SystemScheduler{dispatch: dispatch}
}

func (s *SystemScheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		return stoppedHandle{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.dispatch(func() {
					// A pulse queued before Stop must not run after it.
					if ctx.Err() == nil {
						fn()
					}
				})
			}
		}
	}()
	return &systemHandle{cancel: cancel}
}

func (s *SystemScheduler) After(delay time.Duration, fn func()) Handle {
	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(delay, func() {
		s.dispatch(func() {
			if ctx.Err() == nil {
				cancel()
				fn()
			}
		})
	})
	return &systemHandle{cancel: cancel, timer: timer}
}

type systemHandle struct {
	once   sync.Once
	cancel context.CancelFunc
	timer  *time.Timer
}

func (h *systemHandle) Stop() {
	h.once.Do(func() {
		if h.timer != nil {
			h.timer.Stop()
		}
		h.cancel()
	})
}

type stoppedHandle struct{}

func (stoppedHandle) Stop() {}
