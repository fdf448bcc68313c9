package bons

import (
	"fmt"
	"time"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

type CreateBonRequest struct {
	Tanggal     time.Time
	MesinCetak  string
	WoNumber    string
	McNumber    string
	ItemName    string
	Pic         string
	Remarks     string
	PlateType   string
	JumlahPlate int
}

type createBonPayload struct {
	Tanggal     string `json:"tanggal" binding:"required"`
	MesinCetak  string `json:"mesin_cetak" binding:"required"`
	WoNumber    string `json:"wo_number" binding:"required"`
	McNumber    string `json:"mc_number" binding:"required"`
	ItemName    string `json:"item_name" binding:"required"`
	Pic         string `json:"pic" binding:"required"`
	Remarks     string `json:"remarks" binding:"required"`
	PlateType   string `json:"plate_type" binding:"required"`
	JumlahPlate int    `json:"jumlah_plate" binding:"required,gt=0"`
}

func (p createBonPayload) toRequest() (CreateBonRequest, error) {
	tanggal, err := time.Parse("2006-01-02", p.Tanggal)
	if err != nil {
		return CreateBonRequest{}, fmt.Errorf("invalid tanggal %q, expected YYYY-MM-DD", p.Tanggal)
	}

	if p.Remarks != models.RemarksProduksi && p.Remarks != models.RemarksProof {
		return CreateBonRequest{}, fmt.Errorf("invalid remarks %q", p.Remarks)
	}

	return CreateBonRequest{
		Tanggal:     tanggal,
		MesinCetak:  p.MesinCetak,
		WoNumber:    p.WoNumber,
		McNumber:    p.McNumber,
		ItemName:    p.ItemName,
		Pic:         p.Pic,
		Remarks:     p.Remarks,
		PlateType:   p.PlateType,
		JumlahPlate: p.JumlahPlate,
	}, nil
}

type declinePayload struct {
	Pic    string `json:"pic" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type startCtpPayload struct {
	Pic   string `json:"pic" binding:"required"`
	Group string `json:"group" binding:"required"`
}
