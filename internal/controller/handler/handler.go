package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"safequeue-viz/internal/service"
)

// Handler handles HTTP requests
type Handler struct {
	queueService *service.QueueService
}

func NewHandler(qs *service.QueueService) *Handler {
	return &Handler{queueService: qs}
}

// GetQueue returns the grouped, sectioned queue of one safe
func (h *Handler) GetQueue(ctx *gin.Context) {
	chainID := ctx.Param("chainId")
	address := ctx.Param("address")

	view, err := h.queueService.GetQueue(ctx.Request.Context(), chainID, address)
	if err != nil {
		if errors.Is(err, service.ErrSafeNotWatched) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error reading queue view"})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// GetPendingActions returns the badge counts of one safe
func (h *Handler) GetPendingActions(ctx *gin.Context) {
	chainID := ctx.Param("chainId")
	address := ctx.Param("address")

	actions, err := h.queueService.GetPendingActions(ctx.Request.Context(), chainID, address)
	if err != nil {
		if errors.Is(err, service.ErrSafeNotWatched) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error reading pending actions"})
		return
	}

	ctx.JSON(http.StatusOK, actions)
}

// GetWatchedSafes lists the safes the service is polling
func (h *Handler) GetWatchedSafes(ctx *gin.Context) {
	safes, err := h.queueService.GetWatchedSafes(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error listing watched safes"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"safes": safes})
}
