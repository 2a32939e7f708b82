package app

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Clubs/internal/core"
	"github.com/dkeye/Clubs/internal/domain"
	"github.com/dkeye/Clubs/internal/observability"
)

// Orchestrator is the single entry point for roster operations from adapters.
type Orchestrator struct {
	Roster core.RosterService
	Feed   *Feed
	Now    func() time.Time
}

func NewOrchestrator(roster core.RosterService, feed *Feed) *Orchestrator {
	o := &Orchestrator{Roster: roster, Feed: feed, Now: time.Now}
	for name, v := range roster.List() {
		observability.SetParticipants(string(name), len(v.Participants))
	}
	return o
}

func (o *Orchestrator) List() map[domain.ActivityName]core.ActivityView {
	observability.RecordOperation(observability.OpList, observability.OutcomeOK)
	return o.Roster.List()
}

func (o *Orchestrator) Enroll(name domain.ActivityName, email domain.Email) (core.Enrollment, error) {
	res, err := o.Roster.Enroll(name, email)
	o.finish(observability.OpEnroll, core.EventSignup, res, name, email, err)
	return res, err
}

func (o *Orchestrator) Withdraw(name domain.ActivityName, email domain.Email) (core.Enrollment, error) {
	res, err := o.Roster.Withdraw(name, email)
	o.finish(observability.OpWithdraw, core.EventUnregister, res, name, email, err)
	return res, err
}

func (o *Orchestrator) finish(op string, typ core.EventType, res core.Enrollment, name domain.ActivityName, email domain.Email, err error) {
	if err != nil {
		observability.RecordOperation(op, outcomeOf(err))
		log.Info().Str("module", "app.orch").Str("op", op).Str("activity", string(name)).Str("email", string(email)).Err(err).Msg("rejected")
		return
	}
	observability.RecordOperation(op, observability.OutcomeOK)
	observability.SetParticipants(string(res.Activity), res.Participants)
	log.Info().Str("module", "app.orch").Str("op", op).Str("activity", string(name)).Str("email", string(email)).Int("participants", res.Participants).Msg("roster changed")

	if o.Feed == nil {
		return
	}
	o.Feed.Publish(core.RosterEvent{
		Type:         typ,
		Activity:     res.Activity,
		Email:        res.Email,
		Participants: res.Participants,
		At:           o.Now().UTC(),
	})
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return observability.OutcomeConflict
	case errors.Is(err, domain.ErrNotFound):
		return observability.OutcomeNotFound
	default:
		return observability.OutcomeError
	}
}
