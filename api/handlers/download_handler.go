package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/mediagrab/internal/app"
	"github.com/yourusername/mediagrab/internal/domain"
)

// DownloadHandler handles single and batch download requests
type DownloadHandler struct {
	orchestrator *app.Orchestrator
	logger       *zap.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(orchestrator *app.Orchestrator, logger *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// Download handles GET /download
func (h *DownloadHandler) Download(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.String(http.StatusBadRequest, "No URL provided")
		return
	}

	kind := domain.MediaKind(c.DefaultQuery("type", string(domain.KindVideo)))
	req := domain.DownloadRequest{
		URL:        url,
		Kind:       kind,
		ProgressID: c.Query("video_id"),
	}

	result, err := h.orchestrator.Download(c.Request.Context(), req)
	if err != nil {
		h.fail(c, url, err)
		return
	}
	defer result.Cleanup()

	c.FileAttachment(result.FilePath, result.FileName)
}

// DownloadAlbum handles GET /download_album
func (h *DownloadHandler) DownloadAlbum(c *gin.Context) {
	urls := c.QueryArray("urls")
	if len(urls) == 0 {
		c.String(http.StatusBadRequest, "No URLs provided")
		return
	}

	kind := domain.MediaKind(c.DefaultQuery("type", string(domain.KindVideo)))
	req := domain.BatchRequest{
		URLs:       urls,
		Kind:       kind,
		ProgressID: c.Query("video_id"),
	}

	result, outcome, err := h.orchestrator.DownloadBatch(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "", err)
		return
	}
	defer result.Cleanup()

	if len(outcome.Failed) > 0 {
		h.logger.Warn("Batch completed with dropped items",
			zap.Int("succeeded", len(outcome.Succeeded)),
			zap.Int("failed", len(outcome.Failed)))
		c.Header("X-Items-Failed", strconv.Itoa(len(outcome.Failed)))
	}

	c.FileAttachment(result.FilePath, result.FileName)
}

// fail maps orchestration errors to plain-text transport responses
func (h *DownloadHandler) fail(c *gin.Context, url string, err error) {
	switch {
	case errors.Is(err, domain.ErrInput):
		c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoFiles):
		c.String(http.StatusNotFound, err.Error())
	default:
		h.logger.Error("Download failed",
			zap.String("url", url),
			zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
	}
}
