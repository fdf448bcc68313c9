package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

func TestInitialAdjustmentStatus(t *testing.T) {
	tests := []struct {
		name     string
		remarks  string
		isEpson  bool
		expected models.Status
	}{
		{"curve proof goes straight to mounting", models.RemarksCurveProof, false, models.StatusMenungguAdjustment},
		{"curve produksi goes straight to mounting", models.RemarksCurveProduksi, false, models.StatusMenungguAdjustment},
		{"curve ignores the epson flag", models.RemarksCurveProof, true, models.StatusMenungguAdjustment},
		{"fa proof epson routes to design", models.RemarksFaProof, true, models.StatusMenungguAdjustmentDesign},
		{"fa produksi epson routes to design", models.RemarksFaProduksi, true, models.StatusMenungguAdjustmentDesign},
		{"fa proof non-epson routes to pdnd", models.RemarksFaProof, false, models.StatusMenungguAdjustmentPdnd},
		{"fa produksi non-epson routes to pdnd", models.RemarksFaProduksi, false, models.StatusMenungguAdjustmentPdnd},
		{"unrecognized remarks fall back to mounting", "SOMETHING ELSE", false, models.StatusMenungguAdjustment},
		{"empty remarks fall back to mounting", "", true, models.StatusMenungguAdjustment},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InitialAdjustmentStatus(tc.remarks, tc.isEpson))
		})
	}
}

func TestQueueSetsAreDisjoint(t *testing.T) {
	seen := map[models.Status]string{}
	for name, set := range map[string][]models.Status{
		"pdnd":     PdndStates,
		"design":   DesignStates,
		"mounting": MountingStates,
		"ctp":      CtpStates,
	} {
		for _, status := range set {
			prev, dup := seen[status]
			assert.Falsef(t, dup, "status %s is in both %s and %s", status, prev, name)
			seen[status] = name
		}
	}
}
