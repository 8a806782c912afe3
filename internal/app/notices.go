package app

import (
	"sync"
	"time"

	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

// transientScheduler expires notices after a delay. Scheduling a key cancels
// the pending expiry for that key, so an older timer never clears a newer
// notice. An expiry that fires anyway carries its sequence number and the
// reducer drops it.
type transientScheduler struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	dispatch func(statepkg.Action)
	stopped  bool
}

func newTransientScheduler(dispatch func(statepkg.Action)) *transientScheduler {
	return &transientScheduler{
		timers:   make(map[string]*time.Timer),
		dispatch: dispatch,
	}
}

// Schedule delivers NoticeExpiredAction{key, seq} after d.
func (s *transientScheduler) Schedule(key string, seq int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if t, ok := s.timers[key]; ok {
		t.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		current := s.timers[key] == timer
		if current {
			delete(s.timers, key)
		}
		s.mu.Unlock()
		if current {
			s.dispatch(statepkg.NoticeExpiredAction{Key: key, Seq: seq})
		}
	})
	s.timers[key] = timer
}

// Cancel drops the pending expiry for key.
func (s *transientScheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
}

// Stop cancels everything and ignores later Schedule calls.
func (s *transientScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}
