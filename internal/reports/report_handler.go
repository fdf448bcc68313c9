package reports

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/bons"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/stockcards"
)

type ReportHandler struct {
	cards      map[string]*stockcards.Service
	bonService *bons.BonService
}

func NewHandler(bonService *bons.BonService, cardServices ...*stockcards.Service) *ReportHandler {
	h := &ReportHandler{
		cards:      make(map[string]*stockcards.Service),
		bonService: bonService,
	}
	for _, s := range cardServices {
		h.cards[s.Card().Brand+"/"+s.Card().Material] = s
	}
	return h
}

func (h *ReportHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/reports/stock-cards/:brand/:material/export", h.ExportStockCard)
	router.GET("/reports/bons/:id/export", h.ExportBon)
}

// ExportStockCard recomputes the card rows for (date, shift) and writes
// them as one worksheet, the same rows the JSON endpoint serves.
func (h *ReportHandler) ExportStockCard(c *gin.Context) {
	service, ok := h.cards[c.Param("brand")+"/"+c.Param("material")]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unknown stock card"})
		return
	}

	tanggal, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	shift := c.Query("shift")
	if shift != "1" && shift != "2" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid shift, expected 1 or 2"})
		return
	}

	rows, err := service.GetOrCreateStocks(tanggal, shift)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to load stock card", "details": err.Error()})
		return
	}

	headers := []string{"Item Code", "Item Name", "Stock Awal", "Pemakaian", "Incoming", "Stock Akhir", "Per Box", "Confirmed By"}
	data := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		perBox := ""
		if row.JumlahPerBox != nil {
			perBox = strconv.Itoa(*row.JumlahPerBox)
		}
		confirmedBy := ""
		if row.ConfirmedBy != nil {
			confirmedBy = *row.ConfirmedBy
		}
		data = append(data, []interface{}{
			row.ItemCode,
			row.ItemName,
			row.JumlahStockAwal,
			row.JumlahPemakaian,
			row.JumlahIncoming,
			row.JumlahStockAkhir,
			perBox,
			confirmedBy,
		})
	}

	card := service.Card()
	sheet := fmt.Sprintf("Kartu Stock %s %s", card.Brand, card.Material)
	filename := fmt.Sprintf("kartu-stock-%s-%s-%s-shift%s.xlsx", card.Brand, card.Material, tanggal.Format("2006-01-02"), shift)
	writeSheet(c, sheet, filename, headers, data)
}

// ExportBon renders a single bon request as a printable requisition sheet.
func (h *ReportHandler) ExportBon(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	bon, err := h.bonService.Get(id)
	if err != nil {
		if errors.Is(err, bons.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch bon request", "details": err.Error()})
		return
	}

	headers := []string{"Field", "Value"}
	ctpBy := ""
	if bon.CtpBy != nil {
		ctpBy = *bon.CtpBy
	}
	delivered := ""
	if bon.PlateDeliveredAt != nil {
		delivered = bon.PlateDeliveredAt.Format(time.RFC3339)
	}
	data := [][]interface{}{
		{"Bon No", bon.ID},
		{"Tanggal", bon.Tanggal.Format("2006-01-02")},
		{"Mesin Cetak", bon.MesinCetak},
		{"WO Number", bon.WoNumber},
		{"MC Number", bon.McNumber},
		{"Item Name", bon.ItemName},
		{"Plate Type", bon.PlateType},
		{"Jumlah Plate", bon.JumlahPlate},
		{"Remarks", bon.Remarks},
		{"PIC", bon.Pic},
		{"Status", bon.Status.String()},
		{"CTP By", ctpBy},
		{"Plate Delivered At", delivered},
	}

	writeSheet(c, "Bon Plate", fmt.Sprintf("bon-plate-%d.xlsx", bon.ID), headers, data)
}
