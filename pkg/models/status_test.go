package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatus(t *testing.T) {
	status, err := NewStatus("proses_ctp")
	assert.NoError(t, err)
	assert.Equal(t, StatusProsesCtp, status)

	_, err = NewStatus("shipped")
	assert.Error(t, err)

	_, err = NewStatus("")
	assert.Error(t, err)
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusSelesai.IsTerminal())
	assert.True(t, StatusAdjustmentDibatalkan.IsTerminal())
	assert.True(t, StatusBonDibatalkan.IsTerminal())

	assert.False(t, StatusProsesCtp.IsTerminal())
	assert.False(t, StatusDitolakCtp.IsTerminal())
	assert.False(t, StatusMenungguAdjustmentPdnd.IsTerminal())
}

func TestStockCardRowRecompute(t *testing.T) {
	row := StockCardRow{JumlahIncoming: 20}

	row.Recompute(150, 35)

	assert.Equal(t, 150.0, row.JumlahStockAwal)
	assert.Equal(t, 35.0, row.JumlahPemakaian)
	assert.Equal(t, 135.0, row.JumlahStockAkhir)
	assert.Equal(t, row.JumlahStockAwal-row.JumlahPemakaian+row.JumlahIncoming, row.JumlahStockAkhir)
}
