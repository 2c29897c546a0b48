package parser

import (
	"strings"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// FirstPrintArea returns the first print area defined for sheetName, or nil
// when the sheet has none.
func FirstPrintArea(f *excelize.File, sheetName string) *models.PrintArea {
	areas := ExtractPrintAreas(f)[sheetName]
	if len(areas) == 0 {
		return nil
	}
	a := areas[0]
	return &a
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var (
		areas     []models.PrintArea
		sheetName string
	)

	for _, part := range strings.Split(ref, ",") {
		sheet, area := parseReference(part)
		if area == nil {
			continue
		}
		if sheetName == "" {
			sheetName = sheet
		}
		areas = append(areas, *area)
	}

	return sheetName, areas
}

// parseReference splits a single Sheet!$A$1:$B$2 reference into the sheet
// name and bounds. A single cell reference yields a one-cell area.
func parseReference(ref string) (string, *models.PrintArea) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", nil
	}
	sheet := strings.ReplaceAll(strings.Trim(ref[:idx], "'"), "''", "'")
	return sheet, parseRangeToArea(ref[idx+1:])
}

// parseRangeToArea parses a range string like $A$1:$D$10 to PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
