package session

import (
	"strings"
	"sync"

	"github.com/samber/do"
)

// Service holds the single process-wide conversational context: the most
// recent page summary and the follow-up turn window. All reads and writes go
// through one lock so a summary and its follow-up history always belong to
// the same page.
type Service struct {
	mu      sync.RWMutex
	summary string
	window  turnWindow
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{}, nil
}

// SetSummary replaces the cached summary and drops all recorded follow-up
// turns in the same critical section. Stale Q&A must never survive a new page.
func (s *Service) SetSummary(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary = summary
	s.window.clear()
}

// AppendTurn records a follow-up exchange, evicting the oldest turn once the
// window is full.
func (s *Service) AppendTurn(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.window.add(question, answer)
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stateLocked()
}

func (s *Service) Summary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.summary
}

func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		State:   s.stateLocked(),
		Summary: s.summary,
		History: s.window.format(),
		Turns:   s.window.snapshot(),
	}
}

func (s *Service) stateLocked() State {
	if strings.TrimSpace(s.summary) == "" {
		return StateEmpty
	}

	return StateSummarized
}
