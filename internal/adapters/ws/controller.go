package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Clubs/internal/app"
	"github.com/dkeye/Clubs/internal/core"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	// The feed is read-only and public.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Controller struct {
	Feed       *app.Feed
	ReadLimit  int64
	PingPeriod time.Duration
	SendBuffer int
}

// HandleRoster upgrades the request and subscribes it to the roster feed.
// The connection lives until the client leaves or ctx is done.
func (ctl *Controller) HandleRoster(ctx context.Context, c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.ws").Msg("ws upgrade")
		return
	}

	sink := newSink(conn, ctl.SendBuffer)
	id := ctl.Feed.Subscribe(sink)
	ctx, cancel := context.WithCancel(ctx)

	go ctl.writePump(ctx, id, sink)
	go ctl.readPump(cancel, id, sink)
}

func (ctl *Controller) writePump(ctx context.Context, id core.SubscriberID, s *wsSink) {
	ticker := time.NewTicker(ctl.PingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "adapters.ws").Str("sub", string(id)).Msg("writePump ctx done")
			return
		case <-s.done:
			return
		case ev := <-s.send:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "adapters.ws").Msg("writePump set deadline")
				return
			}
			if err := s.conn.WriteJSON(ev); err != nil {
				log.Error().Err(err).Str("module", "adapters.ws").Str("sub", string(id)).Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Str("module", "adapters.ws").Str("sub", string(id)).Msg("ping failed")
				return
			}
		}
	}
}

// readPump only drains control frames; the feed takes no client messages.
func (ctl *Controller) readPump(cancel context.CancelFunc, id core.SubscriberID, s *wsSink) {
	defer func() {
		log.Info().Str("module", "adapters.ws").Str("sub", string(id)).Msg("readPump closing")
		cancel()
		ctl.Feed.Unsubscribe(id)
		s.Close()
	}()

	pongWait := ctl.PingPeriod * 10 / 9
	s.conn.SetReadLimit(ctl.ReadLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("module", "adapters.ws").Str("sub", string(id)).Msg("readPump read error")
			}
			return
		}
	}
}
