package core

import (
	"sync"

	"github.com/dkeye/Clubs/internal/domain"
)

type activityEntry struct {
	mu  sync.Mutex
	act domain.Activity
}

func (e *activityEntry) view() ActivityView {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.act.Clone()
	return ActivityView{
		Description:     c.Description,
		Schedule:        c.Schedule,
		MaxParticipants: c.MaxParticipants,
		Participants:    c.Participants,
	}
}

// mutate applies op under the entry lock and returns the roster size after it.
func (e *activityEntry) mutate(op func(*domain.Activity, domain.Email) error, email domain.Email) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := op(&e.act, email)
	return len(e.act.Participants), err
}
