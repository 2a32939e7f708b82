package app

import (
	"fmt"

	"github.com/dkeye/Clubs/internal/core"
)

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropEvent
	KickSubscriber
)

// Policy decides what happens to a subscriber that could not take an event.
type Policy interface {
	OnBackPressure(id core.SubscriberID) BackpressureAction
}

// KickPolicy disconnects slow subscribers; they reconnect and refetch.
type KickPolicy struct{}

func (KickPolicy) OnBackPressure(core.SubscriberID) BackpressureAction { return KickSubscriber }

// DropPolicy skips the event and keeps the subscriber.
type DropPolicy struct{}

func (DropPolicy) OnBackPressure(core.SubscriberID) BackpressureAction { return DropEvent }

// PolicyByName maps the slow_policy config value to a Policy.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", "kick":
		return KickPolicy{}, nil
	case "drop":
		return DropPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown slow policy %q", name)
	}
}
