package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/mediagrab/internal/app"
)

// ProgressHandler handles best-effort progress lookups
type ProgressHandler struct {
	tracker *app.ProgressTracker
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(tracker *app.ProgressTracker) *ProgressHandler {
	return &ProgressHandler{tracker: tracker}
}

// Progress handles GET /progress/:id
func (h *ProgressHandler) Progress(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.Snapshot(c.Param("id")))
}
