package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"github.com/xuri/excelize/v2"
)

// chartTypes lists the OOXML plot elements whose series are read.
var chartTypes = map[string]bool{
	"lineChart":      true,
	"line3DChart":    true,
	"barChart":       true,
	"bar3DChart":     true,
	"areaChart":      true,
	"area3DChart":    true,
	"pieChart":       true,
	"pie3DChart":     true,
	"doughnutChart":  true,
	"scatterChart":   true,
	"radarChart":     true,
	"ofPieChart":     true,
	"surfaceChart":   true,
	"surface3DChart": true,
}

// ExtractChart locates the first chart drawn on sheetName and resolves its
// first series to concrete values using f. data is the raw xlsx file that f
// was opened from. It returns nil without error when the sheet has no chart.
func ExtractChart(data []byte, f *excelize.File, sheetName string) (*models.ChartData, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	chartPath, err := firstChartPath(r, sheetName)
	if err != nil || chartPath == "" {
		return nil, err
	}

	chartXML, err := readZipFile(r, chartPath)
	if err != nil || chartXML == nil {
		return nil, err
	}

	title, series, ok := parseChartXML(chartXML)
	if !ok || series.ValueRange == "" {
		return nil, nil
	}

	return resolveChart(f, title, series)
}

// firstChartPath walks workbook -> sheet -> drawing -> chart relationships.
func firstChartPath(r *zip.Reader, sheetName string) (string, error) {
	sheetPath, err := worksheetPath(r, sheetName)
	if err != nil || sheetPath == "" {
		return "", err
	}

	sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
	if err != nil || sheetRelsXML == nil {
		return "", err
	}
	drawingTarget := findDrawingRelationship(sheetRelsXML)
	if drawingTarget == "" {
		return "", nil
	}
	drawingPath := resolveRelativePath(drawingTarget, "xl/worksheets")

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return "", err
	}
	ids := parseDrawingChartIDs(drawingXML)
	if len(ids) == 0 {
		return "", nil
	}

	drawingRelsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || drawingRelsXML == nil {
		return "", err
	}
	targets := parseDrawingRels(drawingRelsXML)
	for _, id := range ids {
		if target, ok := targets[id]; ok {
			return resolveRelativePath(target, "xl/drawings"), nil
		}
	}
	return "", nil
}

// parseDrawingChartIDs returns the relationship ids of chart references in
// document order.
func parseDrawingChartIDs(data []byte) []string {
	var ids []string
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "chart" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local == "id" {
				ids = append(ids, attr.Value)
			}
		}
	}

	return ids
}

// parseDrawingRels parses drawing rels to get chart paths.
func parseDrawingRels(data []byte) map[string]string {
	result := make(map[string]string)
	for _, rel := range parseRelationships(data) {
		if strings.HasSuffix(strings.ToLower(rel.relType), "/chart") {
			result[rel.id] = rel.target
		}
	}
	return result
}

// parseChartXML returns the chart title and its first series.
func parseChartXML(data []byte) (title string, series models.ChartSeries, ok bool) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, isStart := token.(xml.StartElement); isStart && se.Name.Local == "chart" {
			return parseChartElement(decoder)
		}
	}

	return "", series, false
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder) (title string, series models.ChartSeries, ok bool) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
			case "plotArea":
				series, ok = parsePlotArea(decoder)
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseChartTitle concatenates the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var title strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					title.WriteString(txt)
				}
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(title.String())
}

// parsePlotArea returns the first series of the first supported plot.
func parsePlotArea(decoder *xml.Decoder) (series models.ChartSeries, ok bool) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if chartTypes[t.Name.Local] && !ok {
				series, ok = parseFirstSeries(decoder)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseFirstSeries consumes a plot element and returns its first c:ser.
func parseFirstSeries(decoder *xml.Decoder) (series models.ChartSeries, ok bool) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "ser" && !ok {
				series, ok = parseSingleSeries(decoder), true
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tx":
				s.Name = parseFormulaRef(decoder)
			case "cat", "xVal":
				s.CategoryRange = parseFormulaRef(decoder)
			case "val", "yVal":
				s.ValueRange = parseFormulaRef(decoder)
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseFormulaRef consumes the current element and returns the text of its
// first c:f descendant, or of its first c:v when no formula is present.
func parseFormulaRef(decoder *xml.Decoder) string {
	var ref, literal string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "f", "v":
				txt, err := readElementText(decoder)
				if err != nil {
					return ref
				}
				if t.Name.Local == "f" && ref == "" {
					ref = strings.TrimSpace(txt)
				} else if t.Name.Local == "v" && literal == "" {
					literal = strings.TrimSpace(txt)
				}
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}

	if ref != "" {
		return ref
	}
	return literal
}

// resolveChart reads the series ranges from the workbook.
func resolveChart(f *excelize.File, title string, series models.ChartSeries) (*models.ChartData, error) {
	values, err := rangeValues(f, series.ValueRange, true)
	if err != nil {
		return nil, err
	}

	chart := &models.ChartData{
		Title:  title,
		Values: make([]float64, len(values)),
		Labels: make([]string, len(values)),
	}
	for i, v := range values {
		// Non-numeric points are plotted as zero.
		chart.Values[i], _ = strconv.ParseFloat(v, 64)
		chart.Labels[i] = strconv.Itoa(i + 1)
	}

	if series.CategoryRange != "" {
		labels, err := rangeValues(f, series.CategoryRange, false)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(labels) && i < len(chart.Labels); i++ {
			chart.Labels[i] = labels[i]
		}
	}

	if chart.Title == "" {
		chart.Title = seriesName(f, series.Name)
	}

	return chart, nil
}

// seriesName resolves a series name that may be a cell reference or a
// literal.
func seriesName(f *excelize.File, name string) string {
	if !strings.Contains(name, "!") {
		return name
	}
	values, err := rangeValues(f, name, false)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}

// rangeValues returns the cell values of ref (Sheet!$A$1:$A$5) in row-major
// order.
func rangeValues(f *excelize.File, ref string, raw bool) ([]string, error) {
	sheet, area := parseReference(ref)
	if area == nil {
		return nil, nil
	}

	var out []string
	for row := area.R1; row <= area.R2; row++ {
		for col := area.C1; col <= area.C2; col++ {
			cellName, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			v, err := f.GetCellValue(sheet, cellName, excelize.Options{RawCellValue: raw})
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}
