package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// rowFormatAttrs mark a row as stored even when it holds no cells.
var rowFormatAttrs = map[string]bool{
	"s":            true,
	"customFormat": true,
	"ht":           true,
	"customHeight": true,
	"hidden":       true,
}

// RowLayout records which rows a worksheet part actually stores and the last
// column holding a cell element in each of them. excelize reports missing
// rows and trailing blank cells the same way as absent ones; the layout
// tells them apart.
//
// A row is stored when its <row> element holds at least one <c> element or
// carries row formatting. Bare <row r="N"/> elements, which some writers
// (excelize included) emit for skipped rows, count as absent.
type RowLayout struct {
	lastCol map[int]int
	maxRow  int
}

// Present reports whether row (1-based) is stored.
func (l *RowLayout) Present(row int) bool {
	_, ok := l.lastCol[row]
	return ok
}

// LastColumn returns the last 1-based column with a cell element in row, or
// 0 for rows without cells.
func (l *RowLayout) LastColumn(row int) int {
	return l.lastCol[row]
}

// MaxRow returns the highest stored row number.
func (l *RowLayout) MaxRow() int {
	return l.maxRow
}

// ReadRowLayout scans the worksheet part of sheetName in the xlsx file data.
// It returns nil without error when the workbook does not map the sheet to a
// part.
func ReadRowLayout(data []byte, sheetName string) (*RowLayout, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	sheetPath, err := worksheetPath(r, sheetName)
	if err != nil || sheetPath == "" {
		return nil, err
	}
	sheetXML, err := readZipFile(r, sheetPath)
	if err != nil || sheetXML == nil {
		return nil, err
	}
	return parseRowLayout(sheetXML)
}

func parseRowLayout(data []byte) (*RowLayout, error) {
	layout := &RowLayout{lastCol: make(map[int]int)}
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		rowNum, colNum int
		inRow, keep    bool
		lastCol        int
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "row":
				rowNum++
				inRow, keep, colNum, lastCol = true, false, 0, 0
				for _, attr := range t.Attr {
					if attr.Name.Local == "r" {
						n, err := strconv.Atoi(attr.Value)
						if err != nil {
							return nil, err
						}
						rowNum = n
					} else if rowFormatAttrs[attr.Name.Local] {
						keep = true
					}
				}
			case "c":
				if !inRow {
					continue
				}
				colNum++
				for _, attr := range t.Attr {
					if attr.Name.Local == "r" {
						col, _, err := excelize.CellNameToCoordinates(attr.Value)
						if err != nil {
							return nil, err
						}
						colNum = col
					}
				}
				keep = true
				if colNum > lastCol {
					lastCol = colNum
				}
			}
		case xml.EndElement:
			if t.Name.Local != "row" || !inRow {
				continue
			}
			inRow = false
			if keep {
				layout.lastCol[rowNum] = lastCol
				if rowNum > layout.maxRow {
					layout.maxRow = rowNum
				}
			}
		}
	}

	return layout, nil
}
