package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the database and cache probes.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	startedAt time.Time
	db        Pinger
}

// NewHealthHandler reports liveness. db may be nil.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), db: db}
}

type HealthResponse struct {
	Status   string  `json:"status"`
	Uptime   float64 `json:"uptime"`
	Database string  `json:"database,omitempty"`
}

// Check answers {status:"ok", uptime} while the process serves requests;
// a failing database turns the status to degraded.
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	resp := HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Seconds(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
		} else {
			resp.Database = "ok"
		}
	}

	c.JSON(http.StatusOK, resp)
}
