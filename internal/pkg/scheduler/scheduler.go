package scheduler

import (
	"sync"
	"time"
)

// Handle is a cancellable timer or interval. Stop is idempotent and safe to
// call from any goroutine, including the callback itself.
type Handle struct {
	mu      sync.Mutex
	timer   *time.Timer
	ticker  *time.Ticker
	done    chan struct{}
	stopped bool
}

// Stop cancels the timer or interval
func (h *Handle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	if h.timer != nil {
		h.timer.Stop()
	}
	if h.ticker != nil {
		h.ticker.Stop()
	}
	if h.done != nil {
		close(h.done)
	}
}

// Scheduler owns a set of timers and intervals that are torn down together
// when the owning component shuts down.
type Scheduler struct {
	mu      sync.Mutex
	handles []*Handle
	closed  bool
}

// New creates a scheduler
func New() *Scheduler {
	return &Scheduler{}
}

// After fires fn once after d unless the handle is stopped first
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	h := &Handle{}
	h.timer = time.AfterFunc(d, func() {
		h.mu.Lock()
		stopped := h.stopped
		h.mu.Unlock()
		if !stopped {
			fn()
		}
	})
	s.track(h)
	return h
}

// Every fires fn at a fixed interval until the handle is stopped
func (s *Scheduler) Every(d time.Duration, fn func()) *Handle {
	h := &Handle{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.ticker.C:
				fn()
			}
		}
	}()
	s.track(h)
	return h
}

func (s *Scheduler) track(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		h.Stop()
		return
	}
	s.handles = append(s.handles, h)
}

// Close stops every handle created by this scheduler
func (s *Scheduler) Close() {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.closed = true
	s.mu.Unlock()

	for _, h := range handles {
		h.Stop()
	}
}
