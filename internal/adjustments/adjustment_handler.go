package adjustments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/repository"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/workflow"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

type AdjustmentHandler struct {
	service *AdjustmentService
}

func NewHandler(service *AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{service: service}
}

func (h *AdjustmentHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/adjustments", h.Create)
	router.GET("/adjustments", h.List)
	router.GET("/adjustments/:id", h.Get)

	router.PATCH("/adjustments/:id/start-pdnd", h.StartPdnd)
	router.PATCH("/adjustments/:id/finish-pdnd", h.FinishPdnd)
	router.PATCH("/adjustments/:id/start-design", h.StartDesign)
	router.PATCH("/adjustments/:id/finish-design", h.FinishDesign)
	router.PATCH("/adjustments/:id/start-adjustment", h.StartAdjustment)
	router.PATCH("/adjustments/:id/finish-adjustment", h.FinishAdjustment)
	router.PATCH("/adjustments/:id/decline-mounting", h.DeclineMounting)
	router.PATCH("/adjustments/:id/decline-ctp", h.DeclineCtp)
	router.PATCH("/adjustments/:id/cancel", h.Cancel)
	router.PATCH("/adjustments/:id/start-ctp", h.StartCtp)
	router.PATCH("/adjustments/:id/finish-ctp", h.FinishCtp)
	router.PATCH("/adjustments/:id/delivered", h.Deliver)
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// respondTransition maps the workflow error taxonomy onto HTTP statuses:
// guard violations are conflicts the operator has to resolve, not retries.
func respondTransition(c *gin.Context, status models.Status, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": status})
	case errors.Is(err, ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to update adjustment request", "details": err.Error()})
	}
}

func (h *AdjustmentHandler) Create(c *gin.Context) {
	var payload createAdjustmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	req, err := payload.toRequest()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Create(req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create adjustment request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *AdjustmentHandler) List(c *gin.Context) {
	conditions := repository.NewQueryBuilder()
	if status := c.Query("status"); status != "" {
		conditions.AddCondition("status", status)
	}
	if mesin := c.Query("mesin_cetak"); mesin != "" {
		conditions.AddCondition("mesin_cetak", mesin)
	}
	if date := c.Query("tanggal"); date != "" {
		tanggal, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid tanggal, expected YYYY-MM-DD"})
			return
		}
		conditions.AddCondition("tanggal", tanggal)
	}

	items, err := h.service.List(conditions)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list adjustment requests", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *AdjustmentHandler) Get(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch adjustment request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *AdjustmentHandler) StartPdnd(c *gin.Context) {
	h.stageAction(c, h.service.StartPdnd)
}

func (h *AdjustmentHandler) StartDesign(c *gin.Context) {
	h.stageAction(c, h.service.StartDesign)
}

func (h *AdjustmentHandler) StartAdjustment(c *gin.Context) {
	h.stageAction(c, h.service.StartAdjustment)
}

func (h *AdjustmentHandler) stageAction(c *gin.Context, op func(int, string, bool) (models.Status, error)) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var payload actionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	status, err := op(id, payload.Pic, payload.Reprocess)
	respondTransition(c, status, err)
}

func (h *AdjustmentHandler) FinishPdnd(c *gin.Context) {
	h.finishAction(c, h.service.FinishPdnd)
}

func (h *AdjustmentHandler) FinishDesign(c *gin.Context) {
	h.finishAction(c, h.service.FinishDesign)
}

func (h *AdjustmentHandler) FinishAdjustment(c *gin.Context) {
	h.finishAction(c, h.service.FinishAdjustment)
}

func (h *AdjustmentHandler) FinishCtp(c *gin.Context) {
	h.finishAction(c, h.service.FinishCtp)
}

func (h *AdjustmentHandler) Deliver(c *gin.Context) {
	h.finishAction(c, h.service.Deliver)
}

func (h *AdjustmentHandler) finishAction(c *gin.Context, op func(int) (models.Status, error)) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	status, err := op(id)
	respondTransition(c, status, err)
}

func (h *AdjustmentHandler) DeclineMounting(c *gin.Context) {
	h.declineAction(c, h.service.DeclineMounting)
}

func (h *AdjustmentHandler) DeclineCtp(c *gin.Context) {
	h.declineAction(c, h.service.DeclineCtp)
}

func (h *AdjustmentHandler) Cancel(c *gin.Context) {
	h.declineAction(c, h.service.Cancel)
}

func (h *AdjustmentHandler) declineAction(c *gin.Context, op func(int, string, string) (models.Status, error)) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var payload declinePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	status, err := op(id, payload.Pic, payload.Reason)
	respondTransition(c, status, err)
}

func (h *AdjustmentHandler) StartCtp(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var payload startCtpPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	status, err := h.service.StartCtp(id, payload.Pic, payload.Group)
	respondTransition(c, status, err)
}
