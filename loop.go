package movable

import "time"

// Timer is a pending task which can be cancelled.
type Timer interface {
	// Stop cancels the task. It reports false if the task already ran or was stopped.
	Stop() bool
}

// Scheduler runs fn once d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Loop is a single-threaded Scheduler. Tasks never run on their own:
// the host advances the loop clock from its event loop (usually with the frame time)
// and the due tasks run synchronously inside Advance.
type Loop struct {
	now   time.Duration
	seq   uint64
	tasks []*task
}

type task struct {
	loop    *Loop
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

var _ Scheduler = (*Loop)(nil)

// NewLoop creates a loop whose clock starts at zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop clock.
func (l *Loop) Now() time.Duration {
	return l.now
}

// AfterFunc schedules fn to run d after the current loop clock.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &task{loop: l, at: l.now + d, seq: l.seq, fn: fn}
	l.tasks = append(l.tasks, t)
	return t
}

// Advance moves the clock to now and runs the due tasks in deadline order.
// Tasks scheduled by a running task are run too when they are already due.
// The clock never goes backwards. Advance returns the number of tasks run.
func (l *Loop) Advance(now time.Duration) int {
	if now > l.now {
		l.now = now
	}
	ran := 0
	for {
		idx := -1
		for i, t := range l.tasks {
			if t.at > l.now {
				continue
			}
			if idx < 0 || t.at < l.tasks[idx].at ||
				(t.at == l.tasks[idx].at && t.seq < l.tasks[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			return ran
		}
		t := l.tasks[idx]
		l.tasks = append(l.tasks[:idx], l.tasks[idx+1:]...)
		t.fn()
		ran++
	}
}

// Next returns the deadline of the earliest pending task.
func (l *Loop) Next() (time.Duration, bool) {
	if len(l.tasks) == 0 {
		return 0, false
	}
	next := l.tasks[0].at
	for _, t := range l.tasks[1:] {
		if t.at < next {
			next = t.at
		}
	}
	return next, true
}

// Pending returns the number of scheduled tasks.
func (l *Loop) Pending() int {
	return len(l.tasks)
}

func (t *task) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	tasks := t.loop.tasks
	for i, o := range tasks {
		if o == t {
			t.loop.tasks = append(tasks[:i], tasks[i+1:]...)
			return true
		}
	}
	// Already ran.
	return false
}
