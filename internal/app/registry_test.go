package app

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Clubs/internal/core"
)

var errFull = errors.New("full")

type fakeSink struct {
	mu     sync.Mutex
	events []core.RosterEvent
	limit  int
	closed bool
}

func (s *fakeSink) TrySend(ev core.RosterEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || len(s.events) >= s.limit {
		return errFull
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *fakeSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *fakeSink) received() []core.RosterEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.RosterEvent(nil), s.events...)
}

func (s *fakeSink) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func TestFeedPublish(t *testing.T) {
	f := NewFeed(nil)
	a := &fakeSink{limit: 10}
	b := &fakeSink{limit: 10}
	f.Subscribe(a)
	idB := f.Subscribe(b)
	require.Equal(t, 2, f.Count())

	res := f.Publish(core.RosterEvent{Type: core.EventSignup, Activity: "Chess Club"})
	require.Equal(t, 2, res.SentTo)
	require.Empty(t, res.Dropped)

	require.True(t, f.Unsubscribe(idB))
	require.False(t, f.Unsubscribe(idB))
	f.Publish(core.RosterEvent{Type: core.EventUnregister, Activity: "Chess Club"})

	require.Len(t, a.received(), 2)
	require.Len(t, b.received(), 1)
	require.False(t, b.isClosed())
}

func TestFeedKicksSlowSubscriber(t *testing.T) {
	f := NewFeed(KickPolicy{})
	slow := &fakeSink{limit: 0}
	fast := &fakeSink{limit: 10}
	idSlow := f.Subscribe(slow)
	f.Subscribe(fast)

	res := f.Publish(core.RosterEvent{Type: core.EventSignup})
	require.Equal(t, 1, res.SentTo)
	require.Equal(t, []core.SubscriberID{idSlow}, res.Dropped)
	require.True(t, slow.isClosed())
	require.Equal(t, 1, f.Count())
}

func TestFeedDropPolicyKeepsSubscriber(t *testing.T) {
	f := NewFeed(DropPolicy{})
	slow := &fakeSink{limit: 1}
	f.Subscribe(slow)

	f.Publish(core.RosterEvent{Type: core.EventSignup})
	res := f.Publish(core.RosterEvent{Type: core.EventSignup})
	require.Len(t, res.Dropped, 1)
	require.False(t, slow.isClosed())
	require.Equal(t, 1, f.Count())
	require.Len(t, slow.received(), 1)
}

func TestFeedClose(t *testing.T) {
	f := NewFeed(nil)
	a := &fakeSink{limit: 1}
	f.Subscribe(a)
	f.Close()
	require.True(t, a.isClosed())
	require.Zero(t, f.Count())
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	require.NoError(t, err)
	require.IsType(t, KickPolicy{}, p)

	p, err = PolicyByName("drop")
	require.NoError(t, err)
	require.IsType(t, DropPolicy{}, p)

	_, err = PolicyByName("ignore")
	require.Error(t, err)
}
