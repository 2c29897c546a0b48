package parser

import (
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
	// MinRows is the minimum number of rows, header included.
	MinRows int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
		MinRows:          2,
	}
}

// DetectTable finds the table-like region of grid and returns it with the
// first row as headers. It returns nil when the data is too sparse.
func DetectTable(grid models.Grid, params TableDetectionParams) *models.Table {
	if len(grid.Rows) == 0 {
		return nil
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(grid.Rows)
	if minRow < 0 {
		return nil
	}
	if maxRow-minRow+1 < params.MinRows {
		return nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(grid.Rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	table := &models.Table{
		Headers: sliceRow(grid.Rows[minRow], minCol, maxCol),
	}
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		table.Rows = append(table.Rows, sliceRow(grid.Rows[rowIdx], minCol, maxCol))
	}
	return table
}

// sliceRow renders columns minCol..maxCol of row, padding missing cells.
func sliceRow(row models.Row, minCol, maxCol int) []string {
	out := make([]string, maxCol-minCol+1)
	for colIdx := minCol; colIdx <= maxCol && colIdx < len(row.Cells); colIdx++ {
		out[colIdx-minCol] = row.Cells[colIdx].Value()
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row.Cells {
			if cell.Value() == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows []models.Row, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		cells := rows[rowIdx].Cells
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(cells); colIdx++ {
			if cells[colIdx].Value() != "" {
				count++
			}
		}
	}
	return count
}
