package chemicals

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

type ChemicalHandler struct {
	repository ChemicalRepository
}

func NewHandler(repository ChemicalRepository) *ChemicalHandler {
	return &ChemicalHandler{repository: repository}
}

func (h *ChemicalHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/chemical-bons", h.Create)
	router.GET("/chemical-bons", h.List)
}

type createChemicalBonPayload struct {
	Tanggal  string  `json:"tanggal" binding:"required"`
	ItemCode string  `json:"item_code" binding:"required"`
	ItemName string  `json:"item_name" binding:"required"`
	Jumlah   float64 `json:"jumlah" binding:"required,gt=0"`
	Divisi   string  `json:"divisi" binding:"required"`
	Pic      string  `json:"pic" binding:"required"`
}

func (h *ChemicalHandler) Create(c *gin.Context) {
	var payload createChemicalBonPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	tanggal, err := time.Parse("2006-01-02", payload.Tanggal)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid tanggal, expected YYYY-MM-DD"})
		return
	}

	bon := &models.ChemicalBon{
		Tanggal:   tanggal,
		CreatedAt: time.Now(),
		ItemCode:  payload.ItemCode,
		ItemName:  payload.ItemName,
		Jumlah:    payload.Jumlah,
		Divisi:    payload.Divisi,
		Pic:       payload.Pic,
	}

	id, err := h.repository.Insert(bon)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create chemical bon", "details": err.Error()})
		return
	}
	bon.ID = id

	c.JSON(http.StatusCreated, bon)
}

func (h *ChemicalHandler) List(c *gin.Context) {
	var tanggal *time.Time
	if date := c.Query("tanggal"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid tanggal, expected YYYY-MM-DD"})
			return
		}
		tanggal = &parsed
	}

	bons, err := h.repository.List(tanggal, c.Query("item_code"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list chemical bons", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bons)
}
