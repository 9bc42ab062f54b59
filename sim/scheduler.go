package sim

import (
	"sync"
	"time"
)

// Scheduler drives a repeating tick task. The task is registered and
// canceled as a unit; implementations must tolerate repeated Start/Stop
// calls without double-scheduling.
type Scheduler interface {
	Start(task func())
	Stop()
}

// FrameScheduler is driven externally, once per display frame.
// The graphical main loop (and tests) call Tick each frame; the task
// only runs between Start and Stop.
type FrameScheduler struct {
	task func()
}

// NewFrameScheduler creates an externally driven scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Start registers the repeating task. A second Start replaces the task
// rather than stacking a second schedule.
func (s *FrameScheduler) Start(task func()) {
	s.task = task
}

// Stop cancels the pending task.
func (s *FrameScheduler) Stop() {
	s.task = nil
}

// Tick runs the registered task once, if scheduled.
func (s *FrameScheduler) Tick() {
	if s.task != nil {
		s.task()
	}
}

// TickerScheduler runs the task at a fixed interval on its own goroutine.
// Used for headless runs where no display loop exists.
type TickerScheduler struct {
	interval time.Duration

	mu   sync.Mutex
	done chan struct{}
}

// NewTickerScheduler creates a scheduler firing every interval.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerScheduler{interval: interval}
}

// Start begins the repeating schedule. No-op if already running.
func (s *TickerScheduler) Start(task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}
	done := make(chan struct{})
	s.done = done

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				task()
			}
		}
	}()
}

// Stop cancels the schedule. No-op if not running.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return
	}
	close(s.done)
	s.done = nil
}
