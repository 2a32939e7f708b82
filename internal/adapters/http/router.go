package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Clubs/internal/adapters/ws"
	"github.com/dkeye/Clubs/internal/app"
	"github.com/dkeye/Clubs/internal/config"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware echoes X-Request-ID or assigns a fresh one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// AccessLogMiddleware writes one zerolog line per request.
func AccessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("module", "adapters.http").
			Str("rid", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, orch *app.Orchestrator) *gin.Engine {
	switch cfg.Mode {
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	// Match on the escaped path so activity names may contain "%2F".
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware(), AccessLogMiddleware())

	static := staticHandler(cfg.StaticPath)
	r.GET("/static/*filepath", static)
	r.HEAD("/static/*filepath", static)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	h := NewHandler(orch)
	h.RegisterRoutes(r)

	if orch.Feed != nil {
		ctrl := &ws.Controller{
			Feed:       orch.Feed,
			ReadLimit:  cfg.ReadLimit,
			PingPeriod: cfg.PingPeriod,
			SendBuffer: cfg.SendBuffer,
		}
		r.GET("/ws/roster", func(c *gin.Context) {
			log.Info().Str("module", "adapters.http").Str("rid", c.GetString("request_id")).Msg("ws roster endpoint hit")
			ctrl.HandleRoster(ctx, c)
		})
	}

	return r
}
