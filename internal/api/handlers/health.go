package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/services/storage"
)

// Pinger is anything whose upstream connectivity can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	bot     Pinger
	archive storage.StorageInterface
}

type HealthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Version   string                   `json:"version"`
	Services  map[string]ServiceHealth `json:"services"`
}

type ServiceHealth struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

// NewHealthHandler builds the probe handler. archive may be nil when
// archival is disabled; it is then skipped in the report.
func NewHealthHandler(bot Pinger, archive storage.StorageInterface) *HealthHandler {
	return &HealthHandler{
		bot:     bot,
		archive: archive,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "1.0.0",
		Services:  make(map[string]ServiceHealth),
	}

	response.Services["telegram"] = checkService(ctx, h.bot)
	if h.archive != nil {
		response.Services["archive"] = checkService(ctx, h.archive)
	}

	for _, service := range response.Services {
		if service.Status != "healthy" {
			response.Status = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.bot.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func checkService(ctx context.Context, p Pinger) ServiceHealth {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return ServiceHealth{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).String(),
			Error:        err.Error(),
		}
	}
	return ServiceHealth{
		Status:       "healthy",
		ResponseTime: time.Since(start).String(),
	}
}
