package app

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Clubs/internal/core"
	"github.com/dkeye/Clubs/internal/observability"
)

// Feed fans roster events out to live subscribers.
type Feed struct {
	mu     sync.RWMutex
	subs   map[core.SubscriberID]core.EventSink
	policy Policy
}

func NewFeed(policy Policy) *Feed {
	if policy == nil {
		policy = KickPolicy{}
	}
	return &Feed{
		subs:   make(map[core.SubscriberID]core.EventSink),
		policy: policy,
	}
}

func (f *Feed) Subscribe(sink core.EventSink) core.SubscriberID {
	id := core.SubscriberID(uuid.NewString())
	f.mu.Lock()
	f.subs[id] = sink
	n := len(f.subs)
	f.mu.Unlock()
	observability.SetSubscribers(n)
	log.Info().Str("module", "app.feed").Str("sub", string(id)).Int("subscribers", n).Msg("subscribed")
	return id
}

// Unsubscribe forgets id. The sink is left to its owner.
func (f *Feed) Unsubscribe(id core.SubscriberID) bool {
	f.mu.Lock()
	_, ok := f.subs[id]
	delete(f.subs, id)
	n := len(f.subs)
	f.mu.Unlock()
	if ok {
		observability.SetSubscribers(n)
		log.Info().Str("module", "app.feed").Str("sub", string(id)).Int("subscribers", n).Msg("unsubscribed")
	}
	return ok
}

func (f *Feed) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

// Publish never blocks: subscribers whose sink is full are handed to the policy.
func (f *Feed) Publish(ev core.RosterEvent) core.PublishResult {
	res := core.PublishResult{}
	f.mu.RLock()
	for id, sink := range f.subs {
		if err := sink.TrySend(ev); err != nil {
			res.Dropped = append(res.Dropped, id)
			continue
		}
		res.SentTo++
	}
	f.mu.RUnlock()

	for _, id := range res.Dropped {
		f.handleBackpressure(id)
	}
	log.Debug().Str("module", "app.feed").Str("type", string(ev.Type)).Int("sent_to", res.SentTo).Int("dropped", len(res.Dropped)).Msg("publish result")
	return res
}

func (f *Feed) handleBackpressure(id core.SubscriberID) {
	observability.RecordDroppedEvent()
	switch f.policy.OnBackPressure(id) {
	case KickSubscriber:
		f.mu.Lock()
		sink, ok := f.subs[id]
		delete(f.subs, id)
		n := len(f.subs)
		f.mu.Unlock()
		if ok {
			sink.Close()
			observability.SetSubscribers(n)
			log.Warn().Str("module", "app.feed").Str("sub", string(id)).Msg("kicked slow subscriber")
		}
	case DropEvent:
		log.Warn().Str("module", "app.feed").Str("sub", string(id)).Msg("dropped event for slow subscriber")
	}
}

// Close disconnects every subscriber.
func (f *Feed) Close() {
	f.mu.Lock()
	subs := f.subs
	f.subs = make(map[core.SubscriberID]core.EventSink)
	f.mu.Unlock()
	for _, sink := range subs {
		sink.Close()
	}
	observability.SetSubscribers(0)
}
