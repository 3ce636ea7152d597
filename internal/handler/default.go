package handler

import (
	"context"
	"net/http"

	"github.com/rwizi/clickatellhttp/internal/response"
)

// Pinger checks that the gateway session is still alive.
// *clickatell.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeHandler serves basic root and health endpoints.
type HomeHandler struct {
	gw Pinger
}

// NewHomeHandler returns a new HomeHandler.
func NewHomeHandler(gw Pinger) *HomeHandler {
	return &HomeHandler{gw: gw}
}

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := response.WelcomePayload{
		Message: "Clickatell HTTP bridge",
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Health godoc
// @Summary     Health check
// @Description Pings the gateway session and reports whether the bridge
// @Description can still reach Clickatell.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Failure     503 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := response.HealthPayload{
		Status:  "ok",
		Gateway: "up",
	}

	if err := h.gw.Ping(r.Context()); err != nil {
		payload.Status = "degraded"
		payload.Gateway = "unreachable"
		response.RespondJSON(w, http.StatusServiceUnavailable, payload)
		return
	}

	response.RespondJSON(w, http.StatusOK, payload)
}
