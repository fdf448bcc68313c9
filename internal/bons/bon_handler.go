package bons

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

type BonHandler struct {
	service *BonService
}

func NewHandler(service *BonService) *BonHandler {
	return &BonHandler{service: service}
}

func (h *BonHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/bons", h.Create)
	router.GET("/bons", h.List)
	router.GET("/bons/:id", h.Get)

	router.PATCH("/bons/:id/start-ctp", h.StartCtp)
	router.PATCH("/bons/:id/finish-ctp", h.FinishCtp)
	router.PATCH("/bons/:id/delivered", h.Deliver)
	router.PATCH("/bons/:id/decline-ctp", h.DeclineCtp)
	router.PATCH("/bons/:id/cancel", h.Cancel)
}

func bonID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func respondTransition(c *gin.Context, status models.Status, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": status})
	case errors.Is(err, ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to update bon request", "details": err.Error()})
	}
}

func (h *BonHandler) Create(c *gin.Context) {
	var payload createBonPayload
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
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create bon request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *BonHandler) List(c *gin.Context) {
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
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list bon requests", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *BonHandler) Get(c *gin.Context) {
	id, ok := bonID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch bon request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *BonHandler) StartCtp(c *gin.Context) {
	id, ok := bonID(c)
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

func (h *BonHandler) FinishCtp(c *gin.Context) {
	id, ok := bonID(c)
	if !ok {
		return
	}

	status, err := h.service.FinishCtp(id)
	respondTransition(c, status, err)
}

func (h *BonHandler) Deliver(c *gin.Context) {
	id, ok := bonID(c)
	if !ok {
		return
	}

	status, err := h.service.Deliver(id)
	respondTransition(c, status, err)
}

func (h *BonHandler) DeclineCtp(c *gin.Context) {
	h.declineAction(c, h.service.DeclineCtp)
}

func (h *BonHandler) Cancel(c *gin.Context) {
	h.declineAction(c, h.service.Cancel)
}

func (h *BonHandler) declineAction(c *gin.Context, op func(int, string, string) (models.Status, error)) {
	id, ok := bonID(c)
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
