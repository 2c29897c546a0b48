package sheetpdf

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
)

const (
	opLoad     = "load"
	opExtract  = "extract"
	opCompose  = "compose"
	opGenerate = "generate"
)

// lineBreaks are replaced inside cell values so that every source row maps
// to exactly one line of text.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Extract flattens grid into text, row by row. Each cell contributes its
// value followed by one space (placeholders contribute only the space) and
// each row ends with a line break. The result is not trimmed.
func Extract(grid models.Grid) string {
	var b strings.Builder
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			b.WriteString(lineBreaks.Replace(cell.Value()))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ExtractOptions configures ExtractFile.
type ExtractOptions struct {
	// Sheet names the sheet to read; empty means the first sheet.
	Sheet string
	// PrintArea restricts extraction to the sheet's first print area.
	PrintArea bool
	// Table detects a table region in the grid.
	Table bool
	// Chart resolves the first chart on the sheet.
	Chart bool
}

// Extraction is the result of reading one workbook.
type Extraction struct {
	Source  string
	Sheet   string
	Text    string
	Rows    int
	Columns int
	Table   *models.Table
	Chart   *models.ChartData
}

// ExtractFile reads the workbook at path and flattens its sheet into text.
// A missing file fails with ErrSourceNotFound and anything that cannot be
// read or decoded with ErrParseFailure; no partial result is returned.
func ExtractFile(path string, opts ExtractOptions) (*Extraction, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewError(opExtract, path, ErrParseFailure, err)
	}
	defer f.Close()

	sheetName, err := parser.ResolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewError(opExtract, path, ErrParseFailure, err)
	}

	var area *models.PrintArea
	if opts.PrintArea {
		area = parser.FirstPrintArea(f, sheetName)
	}

	layout, err := parser.ReadRowLayout(data, sheetName)
	if err != nil {
		return nil, NewError(opExtract, path, ErrParseFailure, err)
	}

	grid, err := parser.ReadGrid(f, sheetName, area, layout)
	if err != nil {
		return nil, NewError(opExtract, path, ErrParseFailure, err)
	}

	ext := &Extraction{
		Source:  path,
		Sheet:   sheetName,
		Text:    Extract(grid),
		Rows:    len(grid.Rows),
		Columns: grid.Width(),
	}
	if opts.Table {
		ext.Table = parser.DetectTable(grid, parser.DefaultTableParams())
	}
	if opts.Chart {
		if ext.Chart, err = parser.ExtractChart(data, f, sheetName); err != nil {
			return nil, NewError(opExtract, path, ErrParseFailure, err)
		}
	}

	return ext, nil
}

// readSource reads the whole workbook; the handle is closed before returning.
func readSource(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewError(opExtract, path, fsKind(err, ErrParseFailure), err)
	}

	data, err := io.ReadAll(file)
	err = multierr.Append(err, file.Close())
	if err != nil {
		return nil, NewError(opExtract, path, ErrParseFailure, err)
	}
	return data, nil
}

// fsKind classifies a file system error, using fallback for anything other
// than missing files and denied access.
func fsKind(err, fallback error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrSourceNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return fallback
	}
}
