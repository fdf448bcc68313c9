package stockcards

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	custom_error "github.com/prepr3ss/prepress-web-center-sub001/pkg/errors"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/security"
)

// Handler exposes the four stock cards under /stock-cards/:brand/:material.
type Handler struct {
	services map[string]*Service
}

func NewHandler(services ...*Service) *Handler {
	h := &Handler{services: make(map[string]*Service)}
	for _, s := range services {
		h.services[s.Card().Brand+"/"+s.Card().Material] = s
	}
	return h
}

func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/stock-cards/:brand/:material", h.GetStocks)
	router.POST("/stock-cards/:brand/:material/incoming", h.RecordIncoming)
	router.POST("/stock-cards/:brand/confirm", h.Confirm)
}

func (h *Handler) service(c *gin.Context) (*Service, bool) {
	s, ok := h.services[c.Param("brand")+"/"+c.Param("material")]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unknown stock card"})
		return nil, false
	}
	return s, true
}

func parseCardDate(c *gin.Context, value string) (time.Time, bool) {
	tanggal, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return tanggal, true
}

func validShift(shift string) bool {
	return shift == "1" || shift == "2"
}

func (h *Handler) GetStocks(c *gin.Context) {
	s, ok := h.service(c)
	if !ok {
		return
	}

	tanggal, ok := parseCardDate(c, c.Query("date"))
	if !ok {
		return
	}
	shift := c.Query("shift")
	if !validShift(shift) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid shift, expected 1 or 2"})
		return
	}

	rows, err := s.GetOrCreateStocks(tanggal, shift)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to load stock card", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brand":    s.Card().Brand,
		"material": s.Card().Material,
		"tanggal":  tanggal.Format("2006-01-02"),
		"shift":    shift,
		"rows":     rows,
	})
}

type incomingRequest struct {
	Date     string  `json:"date" binding:"required"`
	Shift    string  `json:"shift" binding:"required"`
	ItemCode string  `json:"item_code" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

func (h *Handler) RecordIncoming(c *gin.Context) {
	s, ok := h.service(c)
	if !ok {
		return
	}

	var req incomingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	tanggal, ok := parseCardDate(c, req.Date)
	if !ok {
		return
	}
	if !validShift(req.Shift) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid shift, expected 1 or 2"})
		return
	}

	row, err := s.RecordIncoming(tanggal, req.Shift, req.ItemCode, req.Amount)
	if err != nil {
		if errors.Is(err, ErrUnknownItem) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, ok := err.(*custom_error.UniqueViolationError); ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to record incoming stock", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, row)
}

type confirmRequest struct {
	Date        string `json:"date" binding:"required"`
	Shift       string `json:"shift" binding:"required"`
	ConfirmedBy string `json:"confirmed_by"`
}

// Confirm finalizes both of a brand's cards (plate and chemical) for the
// given shift.
func (h *Handler) Confirm(c *gin.Context) {
	brand := c.Param("brand")

	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	tanggal, ok := parseCardDate(c, req.Date)
	if !ok {
		return
	}
	if !validShift(req.Shift) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid shift, expected 1 or 2"})
		return
	}

	confirmedBy := req.ConfirmedBy
	if confirmedBy == "" {
		operator, ok := security.OperatorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "confirmed_by is required when no operator claim is present"})
			return
		}
		confirmedBy = operator
	}

	confirmed := 0
	for _, s := range h.services {
		if s.Card().Brand != brand {
			continue
		}
		if err := s.Confirm(tanggal, req.Shift, confirmedBy); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to confirm stock card", "details": err.Error()})
			return
		}
		confirmed++
	}

	if confirmed == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unknown stock card brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock card confirmed", "brand": brand, "shift": req.Shift})
}
