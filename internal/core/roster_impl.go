package core

import (
	"github.com/dkeye/Clubs/internal/domain"
	"github.com/rs/zerolog/log"
)

// rosterImpl is a threadsafe in-memory roster.
// byName is never written after construction, so lookups take no lock;
// each activity serializes its own check-then-mutate sequence.
type rosterImpl struct {
	byName map[domain.ActivityName]*activityEntry
	order  []domain.ActivityName
}

// NewRoster builds the store from seed. Activities are copied; the caller
// keeps ownership of seed. Later duplicates of a name are ignored.
func NewRoster(seed []domain.Activity) RosterService {
	r := &rosterImpl{
		byName: make(map[domain.ActivityName]*activityEntry, len(seed)),
		order:  make([]domain.ActivityName, 0, len(seed)),
	}
	for i := range seed {
		if _, ok := r.byName[seed[i].Name]; ok {
			continue
		}
		r.byName[seed[i].Name] = &activityEntry{act: seed[i].Clone()}
		r.order = append(r.order, seed[i].Name)
	}
	log.Info().Str("module", "core.roster").Int("activities", len(r.order)).Msg("roster seeded")
	return r
}

func (r *rosterImpl) Names() []domain.ActivityName {
	out := make([]domain.ActivityName, len(r.order))
	copy(out, r.order)
	return out
}

func (r *rosterImpl) List() map[domain.ActivityName]ActivityView {
	out := make(map[domain.ActivityName]ActivityView, len(r.byName))
	for name, e := range r.byName {
		out[name] = e.view()
	}
	return out
}

func (r *rosterImpl) Get(name domain.ActivityName) (ActivityView, error) {
	e, ok := r.byName[name]
	if !ok {
		return ActivityView{}, domain.ErrActivityNotFound
	}
	return e.view(), nil
}

func (r *rosterImpl) Enroll(name domain.ActivityName, email domain.Email) (Enrollment, error) {
	e, ok := r.byName[name]
	if !ok {
		return Enrollment{}, domain.ErrActivityNotFound
	}
	n, err := e.mutate((*domain.Activity).Add, email)
	if err != nil {
		return Enrollment{}, err
	}
	log.Debug().Str("module", "core.roster").Str("activity", string(name)).Str("email", string(email)).Int("participants", n).Msg("participant added")
	return Enrollment{Activity: name, Email: email, Participants: n}, nil
}

func (r *rosterImpl) Withdraw(name domain.ActivityName, email domain.Email) (Enrollment, error) {
	e, ok := r.byName[name]
	if !ok {
		return Enrollment{}, domain.ErrActivityNotFound
	}
	n, err := e.mutate((*domain.Activity).Remove, email)
	if err != nil {
		return Enrollment{}, err
	}
	log.Debug().Str("module", "core.roster").Str("activity", string(name)).Str("email", string(email)).Int("participants", n).Msg("participant removed")
	return Enrollment{Activity: name, Email: email, Participants: n}, nil
}
