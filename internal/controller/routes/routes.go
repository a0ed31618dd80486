package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safequeue-viz/internal/controller/handler"
)

// RegisterRoutes registers the API routes for the application
func RegisterRoutes(router *gin.Engine, h *handler.Handler) {
	api := router.Group("/")

	api.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	api.GET("/safes", h.GetWatchedSafes)
	api.GET("/safes/:chainId/:address/queue", h.GetQueue)
	api.GET("/safes/:chainId/:address/pending", h.GetPendingActions)
}
