package production

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

type ProductionHandler struct {
	repository ProductionRepository
}

func NewHandler(repository ProductionRepository) *ProductionHandler {
	return &ProductionHandler{repository: repository}
}

func (h *ProductionHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/production-logs", h.Create)
	router.GET("/production-logs", h.List)
}

type createLogPayload struct {
	LogDate           string  `json:"log_date" binding:"required"`
	CtpShift          string  `json:"ctp_shift" binding:"required,oneof='Shift 1' 'Shift 2'"`
	CtpGroup          string  `json:"ctp_group" binding:"required"`
	CtpPic            string  `json:"ctp_pic" binding:"required"`
	MesinCetak        string  `json:"mesin_cetak" binding:"required"`
	WoNumber          string  `json:"wo_number" binding:"required"`
	McNumber          string  `json:"mc_number" binding:"required"`
	ItemName          string  `json:"item_name" binding:"required"`
	PlateTypeMaterial string  `json:"plate_type_material" binding:"required"`
	NumPlateGood      int     `json:"num_plate_good" binding:"min=0"`
	NumPlateNotGood   int     `json:"num_plate_not_good" binding:"min=0"`
	Remarks           *string `json:"remarks"`
}

func (h *ProductionHandler) Create(c *gin.Context) {
	var payload createLogPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	logDate, err := time.Parse("2006-01-02", payload.LogDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid log_date, expected YYYY-MM-DD"})
		return
	}

	entry := &models.ProductionLog{
		LogDate:           logDate,
		CtpShift:          payload.CtpShift,
		CtpGroup:          payload.CtpGroup,
		CtpPic:            payload.CtpPic,
		MesinCetak:        payload.MesinCetak,
		WoNumber:          payload.WoNumber,
		McNumber:          payload.McNumber,
		ItemName:          payload.ItemName,
		PlateTypeMaterial: payload.PlateTypeMaterial,
		NumPlateGood:      payload.NumPlateGood,
		NumPlateNotGood:   payload.NumPlateNotGood,
		Remarks:           payload.Remarks,
	}

	id, err := h.repository.Insert(entry)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create production log", "details": err.Error()})
		return
	}
	entry.ID = id

	c.JSON(http.StatusCreated, entry)
}

func (h *ProductionHandler) List(c *gin.Context) {
	var logDate *time.Time
	if date := c.Query("log_date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid log_date, expected YYYY-MM-DD"})
			return
		}
		logDate = &parsed
	}

	logs, err := h.repository.List(logDate, c.Query("ctp_shift"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list production logs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
