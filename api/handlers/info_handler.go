package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/mediagrab/internal/app"
	"github.com/yourusername/mediagrab/internal/domain"
)

// InfoHandler handles metadata lookup requests
type InfoHandler struct {
	extractor  domain.Extractor
	normalizer *app.Normalizer
	logger     *zap.Logger
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(extractor domain.Extractor, normalizer *app.Normalizer, logger *zap.Logger) *InfoHandler {
	return &InfoHandler{
		extractor:  extractor,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Info handles GET /info
//
// Metadata endpoints return JSON error bodies; download endpoints return
// plain text. The asymmetry is deliberate and matched by the client.
func (h *InfoHandler) Info(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No URL provided"})
		return
	}

	raw, err := h.extractor.ExtractInfo(c.Request.Context(), url)
	if err != nil {
		h.logger.Error("Metadata extraction failed",
			zap.String("url", url),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.normalizer.Normalize(raw))
}
