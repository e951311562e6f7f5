package app

import (
	"sync"
	"time"
)

// scheduler runs slider timers through the Update loop instead of on the
// timer goroutine, so callbacks never race with input handling.
type scheduler struct {
	fired     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

func newScheduler() *scheduler {
	return &scheduler{
		fired: make(chan func()),
		done:  make(chan struct{}),
	}
}

// AfterFunc implements slider.Scheduler.
func (s *scheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, func() {
		select {
		case s.fired <- fn:
		case <-s.done:
		}
	})
	return t.Stop
}

func (s *scheduler) close() {
	s.closeOnce.Do(func() { close(s.done) })
}
