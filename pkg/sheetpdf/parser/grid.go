// Package parser turns xlsx workbooks into the typed models consumed by the
// extraction and composition stages.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook contains no worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ResolveSheet returns name when it exists in f, or the first sheet when
// name is empty.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found", name)
}

// ReadGrid reads sheetName as typed cells. When layout is non-nil only the
// rows it reports as stored are read, and each row extends to its last cell
// element so trailing blank cells become placeholders. A nil layout keeps
// every row GetRows reports. When area is non-nil only cells inside it are
// kept.
func ReadGrid(f *excelize.File, sheetName string, area *models.PrintArea, layout *RowLayout) (models.Grid, error) {
	grid := models.Grid{Sheet: sheetName}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return grid, err
	}

	lastRow := len(rows)
	if layout != nil && layout.MaxRow() > lastRow {
		lastRow = layout.MaxRow()
	}

	for rowNum := 1; rowNum <= lastRow; rowNum++ {
		if layout != nil && !layout.Present(rowNum) {
			continue
		}
		if area != nil && (rowNum < area.R1 || rowNum > area.R2) {
			continue
		}

		var row []string
		if rowNum <= len(rows) {
			row = rows[rowNum-1]
		}
		width := len(row)
		if layout != nil && layout.LastColumn(rowNum) > width {
			width = layout.LastColumn(rowNum)
		}

		cells := make([]models.Cell, 0, width)
		for colNum := 1; colNum <= width; colNum++ {
			if area != nil && !area.Contains(colNum, rowNum) {
				continue
			}
			// GetRows trims trailing cells without a value.
			if colNum > len(row) {
				cells = append(cells, models.EmptyCell())
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				return grid, err
			}
			cell, err := readCell(f, sheetName, cellName, row[colNum-1])
			if err != nil {
				return grid, fmt.Errorf("%s: %w", cellName, err)
			}
			cells = append(cells, cell)
		}
		grid.Rows = append(grid.Rows, models.Row{R: rowNum, Cells: cells})
	}

	return grid, nil
}

// readCell classifies a single cell. Formula cells are never evaluated and
// always become placeholders.
func readCell(f *excelize.File, sheetName, cellName, raw string) (models.Cell, error) {
	formula, err := f.GetCellFormula(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	if formula != "" {
		return models.EmptyCell(), nil
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.BoolCell(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeDate:
		return models.TextCell(raw), nil
	case excelize.CellTypeError:
		return models.EmptyCell(), nil
	default:
		return parseValue(raw), nil
	}
}

// parseValue classifies an untyped raw value: empty stays a placeholder,
// anything parseable as a float is a number, the rest is text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.EmptyCell()
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return models.NumberCell(v)
	}
	return models.TextCell(s)
}
