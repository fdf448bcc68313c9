package stockcards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestShiftWindowShift1(t *testing.T) {
	from, to, ok := ShiftWindow(date(2025, 3, 10), "1")

	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 10, 6, 45, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC), to)
}

func TestShiftWindowShift2SpansMidnight(t *testing.T) {
	from, to, ok := ShiftWindow(date(2025, 3, 10), "2")

	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 11, 6, 45, 0, 0, time.UTC), to)

	// Post-midnight consumption still belongs to the previous day's shift 2.
	lateNight := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	earlyMorning := time.Date(2025, 3, 11, 3, 0, 0, 0, time.UTC)
	nextShift := time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC)

	assert.True(t, !lateNight.Before(from) && lateNight.Before(to))
	assert.True(t, !earlyMorning.Before(from) && earlyMorning.Before(to))
	assert.False(t, nextShift.Before(to))
}

func TestShiftWindowUnknownShift(t *testing.T) {
	_, _, ok := ShiftWindow(date(2025, 3, 10), "3")
	assert.False(t, ok)

	_, _, ok = ShiftWindow(date(2025, 3, 10), "")
	assert.False(t, ok)
}

func TestShiftWindowsAreContiguous(t *testing.T) {
	_, endOfShift1, _ := ShiftWindow(date(2025, 3, 10), "1")
	startOfShift2, endOfShift2, _ := ShiftWindow(date(2025, 3, 10), "2")
	startOfNextDay, _, _ := ShiftWindow(date(2025, 3, 11), "1")

	assert.Equal(t, endOfShift1, startOfShift2)
	assert.Equal(t, endOfShift2, startOfNextDay)
}

func TestCatalogItemLookup(t *testing.T) {
	card := FujiPlateCard()

	item, ok := card.catalogItem("FJ-1055")
	assert.True(t, ok)
	assert.Equal(t, "FUJI LH-PJE 1055 X 811 X 0.30", item.Name)
	assert.NotNil(t, item.PerBox)

	_, ok = card.catalogItem("SP-1055")
	assert.False(t, ok)
}

func TestCardDefinitions(t *testing.T) {
	for _, card := range []Card{FujiPlateCard(), SaphiraPlateCard()} {
		assert.Equal(t, "plate", card.Material)
		assert.Len(t, card.Catalog, 4)
		for _, item := range card.Catalog {
			assert.NotNil(t, item.PerBox, "plate items carry a per-box count")
		}
		assert.IsType(t, plateUsage{}, card.usage)
		assert.IsType(t, latestPriorLookup{}, card.prior)
	}

	for _, card := range []Card{FujiChemicalCard(), SaphiraChemicalCard()} {
		assert.Equal(t, "chemical", card.Material)
		assert.Len(t, card.Catalog, 4)
		for _, item := range card.Catalog {
			assert.Nil(t, item.PerBox, "chemical items have no box packaging")
		}
		assert.IsType(t, chemicalUsage{}, card.usage)
		assert.IsType(t, handoverLookup{}, card.prior)
	}
}
