package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Clubs/internal/app"
	"github.com/dkeye/Clubs/internal/domain"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

const detailEmailRequired = "email query parameter is required"

// Handler maps the activity endpoints onto the orchestrator.
type Handler struct {
	orch *app.Orchestrator
}

func NewHandler(orch *app.Orchestrator) *Handler {
	return &Handler{orch: orch}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/activities", h.listActivities)
	r.POST("/activities/:name/signup", h.signup)
	r.DELETE("/activities/:name/participants", h.unregister)
}

func (h *Handler) listActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.orch.List())
}

func (h *Handler) signup(c *gin.Context) {
	name := domain.ActivityName(c.Param("name"))
	email, ok := emailParam(c)
	if !ok {
		return
	}
	res, err := h.orch.Enroll(name, email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", res.Email, res.Activity),
	})
}

func (h *Handler) unregister(c *gin.Context) {
	name := domain.ActivityName(c.Param("name"))
	email, ok := emailParam(c)
	if !ok {
		return
	}
	res, err := h.orch.Withdraw(name, email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", res.Email, res.Activity),
	})
}

// emailParam takes the email verbatim; only absence is rejected.
func emailParam(c *gin.Context) (domain.Email, bool) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: detailEmailRequired})
		return "", false
	}
	return domain.Email(email), true
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("module", "adapters.http").Str("rid", c.GetString("request_id")).Msg("unexpected roster error")
	}
	c.JSON(status, ErrorResponse{Detail: detailFor(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func detailFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return "Activity not found"
	case errors.Is(err, domain.ErrParticipantNotFound):
		return "Participant not found"
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return "Student is already signed up"
	default:
		return "internal error"
	}
}
