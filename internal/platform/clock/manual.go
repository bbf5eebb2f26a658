package clock

import "time"

// Manual is a Clock and Scheduler whose time only moves when Advance is
// called. Due callbacks fire synchronously inside Advance, in due order, with
// Now reporting each callback's due time.
type Manual struct {
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	seq      int
	due      time.Time
	interval time.Duration
	fn       func()
	stopped  bool
}

func (t *manualTask) Stop() { t.stopped = true }

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		return stoppedHandle{}
	}
	return m.add(interval, interval, fn)
}

func (m *Manual) After(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return m.add(delay, 0, fn)
}

// Pending reports how many scheduled tasks are still live.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing every task that falls due.
// Negative durations are ignored so time never runs backwards.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.interval > 0 {
			next.due = next.due.Add(next.interval)
		} else {
			next.stopped = true
		}
		next.fn()
	}
	m.now = target
	m.prune()
}

func (m *Manual) add(delay, interval time.Duration, fn func()) *manualTask {
	m.seq++
	task := &manualTask{seq: m.seq, due: m.now.Add(delay), interval: interval, fn: fn}
	m.tasks = append(m.tasks, task)
	return task
}

func (m *Manual) nextDue(limit time.Time) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.stopped || t.due.After(limit) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) prune() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.tasks = live
}
