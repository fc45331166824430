package handlers

import (
	"net/http"
	"os/exec"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	extractorBinary string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(extractorBinary string) *HealthHandler {
	return &HealthHandler{extractorBinary: extractorBinary}
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, err := exec.LookPath(h.extractorBinary); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "extraction engine binary not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
