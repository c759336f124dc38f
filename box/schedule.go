package box

import "time"

// Scheduler runs tasks off the frame clock. It never starts goroutines:
// tasks fire from inside Advance, on the caller's thread.
type Scheduler struct {
	tasks []*Task
}

// Task is a pending or repeating callback owned by a Scheduler.
type Task struct {
	every   time.Duration
	elapsed time.Duration
	repeat  bool
	stopped bool
	fn      func()
}

// Every schedules fn each d of frame time. d <= 0 yields a stopped task.
func (s *Scheduler) Every(d time.Duration, fn func()) *Task {
	return s.add(&Task{every: d, repeat: true, fn: fn})
}

// After schedules fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.add(&Task{every: d, fn: fn})
}

func (s *Scheduler) add(t *Task) *Task {
	if t.every <= 0 || t.fn == nil {
		t.stopped = true
		return t
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock by dt and fires due tasks in scheduling order.
// A repeating task whose period fits several times into dt fires once per
// period.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	// tasks may schedule or stop other tasks while firing
	pending := append([]*Task(nil), s.tasks...)
	for _, t := range pending {
		if t.stopped {
			continue
		}
		t.elapsed += dt
		for !t.stopped && t.elapsed >= t.every {
			t.elapsed -= t.every
			if !t.repeat {
				t.stopped = true
			}
			t.fn()
		}
	}
	s.compact()
}

// Stop cancels every task.
func (s *Scheduler) Stop() {
	for _, t := range s.tasks {
		t.stopped = true
	}
	s.tasks = nil
}

// Len is the number of live tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Stop cancels the task. Stopping a nil or finished task is a no-op.
func (t *Task) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Active reports whether the task will still fire.
func (t *Task) Active() bool {
	return t != nil && !t.stopped
}
