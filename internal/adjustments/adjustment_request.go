package adjustments

import (
	"fmt"
	"time"
)

type CreateAdjustmentRequest struct {
	Tanggal    time.Time
	MesinCetak string
	WoNumber   string
	McNumber   string
	ItemName   string
	Pic        string
	Remarks    string
	IsEpson    bool
}

type createAdjustmentPayload struct {
	Tanggal    string `json:"tanggal" binding:"required"`
	MesinCetak string `json:"mesin_cetak" binding:"required"`
	WoNumber   string `json:"wo_number" binding:"required"`
	McNumber   string `json:"mc_number" binding:"required"`
	ItemName   string `json:"item_name" binding:"required"`
	Pic        string `json:"pic" binding:"required"`
	Remarks    string `json:"remarks" binding:"required"`
	IsEpson    bool   `json:"is_epson"`
}

func (p createAdjustmentPayload) toRequest() (CreateAdjustmentRequest, error) {
	tanggal, err := time.Parse("2006-01-02", p.Tanggal)
	if err != nil {
		return CreateAdjustmentRequest{}, fmt.Errorf("invalid tanggal %q, expected YYYY-MM-DD", p.Tanggal)
	}

	// Remarks stays free-form: unrecognized values fall back to the
	// Mounting queue in workflow.InitialAdjustmentStatus.
	return CreateAdjustmentRequest{
		Tanggal:    tanggal,
		MesinCetak: p.MesinCetak,
		WoNumber:   p.WoNumber,
		McNumber:   p.McNumber,
		ItemName:   p.ItemName,
		Pic:        p.Pic,
		Remarks:    p.Remarks,
		IsEpson:    p.IsEpson,
	}, nil
}

type actionPayload struct {
	Pic       string `json:"pic" binding:"required"`
	Reprocess bool   `json:"reprocess"`
}

type declinePayload struct {
	Pic    string `json:"pic" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type startCtpPayload struct {
	Pic   string `json:"pic" binding:"required"`
	Group string `json:"group" binding:"required"`
}
