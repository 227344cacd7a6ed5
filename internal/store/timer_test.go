package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingNotifier records how often the end-of-countdown cue fired.
type countingNotifier struct {
	mu    sync.Mutex
	calls int
}

func (n *countingNotifier) TimerFinished() {
	n.mu.Lock()
	n.calls++
	n.mu.Unlock()
}

func (n *countingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

func timerDone(s *Store) func() bool {
	return func() bool {
		seconds, running := s.TimerState()
		return !running && seconds != nil && *seconds == 0
	}
}

func TestCountdownReachesZeroAndNotifiesOnce(t *testing.T) {
	notifier := &countingNotifier{}
	s := New(emptyMockStorage(),
		WithTickInterval(time.Millisecond),
		WithNotifier(notifier),
	)

	s.StartTimer(30)

	seconds, running := s.TimerState()
	require.NotNil(t, seconds)
	assert.True(t, running)
	assert.Equal(t, 30, *seconds)

	assert.Eventually(t, timerDone(s), 2*time.Second, 5*time.Millisecond)

	// Give a stray extra tick the chance to fire before asserting once.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, notifier.Count())
}

func TestStartTimerReplacesRunningCountdown(t *testing.T) {
	notifier := &countingNotifier{}
	s := New(emptyMockStorage(),
		WithTickInterval(time.Millisecond),
		WithNotifier(notifier),
	)

	s.StartTimer(100000)
	s.StartTimer(20)

	seconds, running := s.TimerState()
	require.NotNil(t, seconds)
	assert.True(t, running)
	assert.Equal(t, 20, *seconds)

	assert.Eventually(t, timerDone(s), 2*time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, notifier.Count())
}

func TestPauseTimerKeepsRemainingSeconds(t *testing.T) {
	// Interval long enough that no tick fires during the test.
	s := New(emptyMockStorage(), WithTickInterval(time.Hour))

	s.StartTimer(45)
	s.PauseTimer()

	seconds, running := s.TimerState()
	require.NotNil(t, seconds)
	assert.False(t, running)
	assert.Equal(t, 45, *seconds)
}

func TestResetTimerClearsState(t *testing.T) {
	s := New(emptyMockStorage(), WithTickInterval(time.Hour))

	s.StartTimer(45)
	s.ResetTimer()

	seconds, running := s.TimerState()
	assert.Nil(t, seconds)
	assert.False(t, running)
}

func TestRunningImpliesActiveSeconds(t *testing.T) {
	s := New(emptyMockStorage(), WithTickInterval(time.Hour))

	check := func() {
		seconds, running := s.TimerState()
		if running {
			assert.NotNil(t, seconds)
		}
	}

	check()
	s.StartTimer(10)
	check()
	s.PauseTimer()
	check()
	s.StartTimer(5)
	check()
	s.ResetTimer()
	check()
}
