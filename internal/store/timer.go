package store

import "time"

// TimerNotifier is invoked exactly once when a countdown reaches zero.
// Implementations play the end-of-rest cue; a failing cue must not affect
// the timer transition, so the interface cannot return an error.
type TimerNotifier interface {
	TimerFinished()
}

// StartTimer begins a countdown from the given number of seconds. Any
// countdown already in flight is stopped first, so at most one tick loop
// exists at a time.
func (s *Store) StartTimer(seconds int) {
	s.mu.Lock()
	s.stopCountdownLocked()
	if seconds < 0 {
		seconds = 0
	}
	sec := seconds
	s.timerSeconds = &sec
	s.timerRunning = true
	stop := make(chan struct{})
	s.timerStop = stop
	s.mu.Unlock()

	go s.runCountdown(stop)
}

// PauseTimer freezes the countdown, keeping the remaining seconds.
func (s *Store) PauseTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopCountdownLocked()
	s.timerRunning = false
}

// ResetTimer stops the countdown and clears the remaining seconds.
func (s *Store) ResetTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopCountdownLocked()
	s.timerRunning = false
	s.timerSeconds = nil
}

// TimerState returns the remaining seconds (nil when no timer is active)
// and whether the countdown is running.
func (s *Store) TimerState() (*int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timerSeconds == nil {
		return nil, s.timerRunning
	}
	sec := *s.timerSeconds
	return &sec, s.timerRunning
}

func (s *Store) stopCountdownLocked() {
	if s.timerStop != nil {
		close(s.timerStop)
		s.timerStop = nil
	}
}

// runCountdown is the single background writer: one goroutine per active
// countdown, replaced wholesale by StartTimer and cancelled by the stop
// channel.
func (s *Store) runCountdown(stop chan struct{}) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if s.tickCountdown() {
				return
			}
		}
	}
}

// tickCountdown decrements once and reports whether the loop should stop.
// On reaching zero it flips the running flag and fires the notifier, once.
func (s *Store) tickCountdown() (done bool) {
	s.mu.Lock()
	if !s.timerRunning || s.timerSeconds == nil {
		s.mu.Unlock()
		return true
	}
	*s.timerSeconds--
	if *s.timerSeconds > 0 {
		s.mu.Unlock()
		return false
	}
	*s.timerSeconds = 0
	s.timerRunning = false
	s.timerStop = nil
	notifier := s.notifier
	s.mu.Unlock()

	if notifier != nil {
		notifier.TimerFinished()
	}
	return true
}
