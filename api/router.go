package api

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/mediagrab/api/handlers"
	"github.com/yourusername/mediagrab/api/middleware"
	"github.com/yourusername/mediagrab/internal/app"
	"github.com/yourusername/mediagrab/internal/domain"
	"github.com/yourusername/mediagrab/web"
)

// SetupRouter sets up the HTTP router
func SetupRouter(
	config *domain.Config,
	extractor domain.Extractor,
	normalizer *app.Normalizer,
	orchestrator *app.Orchestrator,
	tracker *app.ProgressTracker,
	history domain.HistoryRepository,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(config.Extractor.Binary)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Core endpoints
	infoHandler := handlers.NewInfoHandler(extractor, normalizer, log)
	downloadHandler := handlers.NewDownloadHandler(orchestrator, log)
	progressHandler := handlers.NewProgressHandler(tracker)

	router.GET("/info", infoHandler.Info)
	router.GET("/download", downloadHandler.Download)
	router.GET("/download_album", downloadHandler.DownloadAlbum)
	router.GET("/progress/:id", progressHandler.Progress)

	// History API
	historyHandler := handlers.NewHistoryHandler(history, config.History.RecentLimit, log)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/history", historyHandler.List)
		v1.GET("/history/stats", historyHandler.Stats)
	}

	// Static page assets
	staticFS := web.GetStaticFS()
	router.GET("/", func(c *gin.Context) {
		serveStatic(c, staticFS, "index.html", "text/html; charset=utf-8")
	})
	router.GET("/script.js", func(c *gin.Context) {
		serveStatic(c, staticFS, "script.js", "application/javascript; charset=utf-8")
	})
	router.GET("/css/*filepath", func(c *gin.Context) {
		serveStatic(c, staticFS, "css"+c.Param("filepath"), "text/css; charset=utf-8")
	})

	return router
}

// serveStatic serves one file from the embedded filesystem
func serveStatic(c *gin.Context, staticFS fs.FS, filePath, contentType string) {
	content, err := fs.ReadFile(staticFS, filePath)
	if err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}
	c.Data(http.StatusOK, contentType, content)
}
