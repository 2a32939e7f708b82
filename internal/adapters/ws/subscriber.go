// Package ws streams roster events to browsers over WebSocket.
package ws

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dkeye/Clubs/internal/core"
)

var (
	ErrBackpressure = errors.New("subscriber send buffer full")
	ErrClosed       = errors.New("subscriber closed")
)

// wsSink is the core.EventSink of one browser connection.
// send is never closed; done marks the end of the connection.
type wsSink struct {
	conn *websocket.Conn
	send chan core.RosterEvent
	done chan struct{}
	once sync.Once
}

func newSink(conn *websocket.Conn, buffer int) *wsSink {
	return &wsSink{
		conn: conn,
		send: make(chan core.RosterEvent, buffer),
		done: make(chan struct{}),
	}
}

func (s *wsSink) TrySend(ev core.RosterEvent) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}
	select {
	case s.send <- ev:
		return nil
	default:
		return ErrBackpressure
	}
}

func (s *wsSink) Close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}
