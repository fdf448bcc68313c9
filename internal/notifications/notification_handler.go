// Package notifications serves the per-division queue counts the frontend
// polls. The counts are derived from workflow status membership; there is
// no notification state of its own.
package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/adjustments"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/bons"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/workflow"
)

type NotificationHandler struct {
	adjustmentRepo adjustments.AdjustmentRepository
	bonRepo        bons.BonRepository
}

func NewHandler(ar adjustments.AdjustmentRepository, br bons.BonRepository) *NotificationHandler {
	return &NotificationHandler{adjustmentRepo: ar, bonRepo: br}
}

func (h *NotificationHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/notifications/counts", h.Counts)
}

func (h *NotificationHandler) Counts(c *gin.Context) {
	pdnd, err := h.adjustmentRepo.CountByStatuses(workflow.PdndStates)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to count queues", "details": err.Error()})
		return
	}
	design, err := h.adjustmentRepo.CountByStatuses(workflow.DesignStates)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to count queues", "details": err.Error()})
		return
	}
	mounting, err := h.adjustmentRepo.CountByStatuses(workflow.MountingStates)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to count queues", "details": err.Error()})
		return
	}

	ctpAdjustments, err := h.adjustmentRepo.CountByStatuses(workflow.CtpStates)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to count queues", "details": err.Error()})
		return
	}
	ctpBons, err := h.bonRepo.CountByStatuses(workflow.CtpStates)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to count queues", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pdnd":     pdnd,
		"design":   design,
		"mounting": mounting,
		"ctp":      ctpAdjustments + ctpBons,
	})
}
