package core

import (
	"time"

	"github.com/dkeye/Clubs/internal/domain"
)

// ActivityView is a read-only copy of an activity for APIs.
type ActivityView struct {
	Description     string         `json:"description"`
	Schedule        string         `json:"schedule"`
	MaxParticipants int            `json:"max_participants"`
	Participants    []domain.Email `json:"participants"`
}

// Enrollment confirms a successful roster change.
type Enrollment struct {
	Activity     domain.ActivityName
	Email        domain.Email
	Participants int
}

// RosterService is the core-facing API of the activity roster.
// Failed preconditions never modify a roster.
type RosterService interface {
	List() map[domain.ActivityName]ActivityView
	Get(name domain.ActivityName) (ActivityView, error)
	Names() []domain.ActivityName

	Enroll(name domain.ActivityName, email domain.Email) (Enrollment, error)
	Withdraw(name domain.ActivityName, email domain.Email) (Enrollment, error)
}

type EventType string

const (
	EventSignup     EventType = "signup"
	EventUnregister EventType = "unregister"
)

// RosterEvent describes one successful roster change.
type RosterEvent struct {
	Type         EventType           `json:"type"`
	Activity     domain.ActivityName `json:"activity"`
	Email        domain.Email        `json:"email"`
	Participants int                 `json:"participants"`
	At           time.Time           `json:"at"`
}

type SubscriberID string

// EventSink abstracts a live subscriber transport.
// Owned by the adapter; TrySend must not block.
type EventSink interface {
	TrySend(RosterEvent) error
	Close()
}

// PublishResult reports delivery stats/backpressure to the orchestrator.
type PublishResult struct {
	SentTo  int
	Dropped []SubscriberID
}
