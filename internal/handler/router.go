package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ddd/youtube-lookup/internal/middleware"
)

// NewRouter assembles the gin engine: middleware stack, API routes, static
// landing page, health, and metrics.
func NewRouter(channels *ChannelHandler, lists *ListHandler, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	if staticDir != "" {
		r.StaticFile("/", staticDir+"/index.html")
	}

	r.GET("/health", handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/channel", channels.HandleLookup)
	api.POST("/playlist_items", lists.HandlePlaylistItems)
	api.POST("/subscriptions", lists.HandleSubscriptions)

	return r
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
