package reactive

import "sync"

// Scope is a per-component cancellation signal. Subscriptions and timers
// register cleanups on it; Close runs them once and flips the closed
// flag so no callback tied to the scope fires afterwards.
type Scope struct {
	mu       sync.Mutex
	closed   bool
	cleanups []func()
}

func NewScope() *Scope {
	return &Scope{}
}

func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// OnClose registers a cleanup. If the scope is already closed the
// cleanup runs immediately.
func (s *Scope) OnClose(fn func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
	s.mu.Unlock()
}

// Close marks the scope closed and runs registered cleanups in reverse
// registration order. Closing twice is a no-op.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
