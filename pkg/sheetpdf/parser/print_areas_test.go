package parser

import (
	"testing"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantAreas []models.PrintArea
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'My Sheet'!$B$2:$C$3", "My Sheet", []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}}},
		{"Sheet1!$A$1:$B$2,Sheet1!$D$4:$E$5", "Sheet1", []models.PrintArea{
			{R1: 1, C1: 1, R2: 2, C2: 2},
			{R1: 4, C1: 4, R2: 5, C2: 5},
		}},
		{"Sheet1!$C$7", "Sheet1", []models.PrintArea{{R1: 7, C1: 3, R2: 7, C2: 3}}},
		{"$A$1:$B$2", "", nil},
		{"Sheet1!garbage", "", nil},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		if sheet != tt.wantSheet {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.wantSheet)
		}
		if len(areas) != len(tt.wantAreas) {
			t.Errorf("parsePrintAreaReference(%q) = %v, expected %v", tt.ref, areas, tt.wantAreas)
			continue
		}
		for i := range areas {
			if areas[i] != tt.wantAreas[i] {
				t.Errorf("parsePrintAreaReference(%q)[%d] = %v, expected %v", tt.ref, i, areas[i], tt.wantAreas[i])
			}
		}
	}
}
