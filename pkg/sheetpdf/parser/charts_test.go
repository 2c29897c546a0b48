package parser

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractChart(t *testing.T) {
	sheetName := "Sheet1"
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Month", "Amount"},
		{"Jan", 10},
		{"Feb", 20},
		{"Mar", 30},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.AddChart(sheetName, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$B$1",
			Categories: "Sheet1!$A$2:$A$4",
			Values:     "Sheet1!$B$2:$B$4",
		}},
		Title: []excelize.RichTextRun{{Text: "Sales"}},
	}); err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	chart, err := ExtractChart(buf.Bytes(), f, sheetName)
	if err != nil {
		t.Fatalf("ExtractChart failed: %v", err)
	}
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if chart.Title != "Sales" {
		t.Errorf("Title = %q, expected Sales", chart.Title)
	}
	if want := []string{"Jan", "Feb", "Mar"}; !reflect.DeepEqual(chart.Labels, want) {
		t.Errorf("Labels = %v, expected %v", chart.Labels, want)
	}
	if want := []float64{10, 20, 30}; !reflect.DeepEqual(chart.Values, want) {
		t.Errorf("Values = %v, expected %v", chart.Values, want)
	}
}

func TestExtractChartNone(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "no chart here")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	chart, err := ExtractChart(buf.Bytes(), f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractChart failed: %v", err)
	}
	if chart != nil {
		t.Errorf("expected no chart, got %+v", chart)
	}
}

func TestParseChartXML(t *testing.T) {
	data := []byte(`<c:chartSpace xmlns:c="c" xmlns:a="a">
<c:chart>
  <c:title><c:tx><c:rich><a:p><a:r><a:t>Q1 </a:t></a:r><a:r><a:t>Revenue</a:t></a:r></a:p></c:rich></c:tx></c:title>
  <c:plotArea>
    <c:layout/>
    <c:lineChart>
      <c:ser>
        <c:idx val="0"/>
        <c:tx><c:strRef><c:f>Data!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>Revenue</c:v></c:pt></c:strCache></c:strRef></c:tx>
        <c:cat><c:strRef><c:f>Data!$A$2:$A$3</c:f></c:strRef></c:cat>
        <c:val><c:numRef><c:f>Data!$B$2:$B$3</c:f></c:numRef></c:val>
      </c:ser>
      <c:ser>
        <c:val><c:numRef><c:f>Data!$C$2:$C$3</c:f></c:numRef></c:val>
      </c:ser>
    </c:lineChart>
    <c:valAx><c:title><c:tx><c:rich><a:p><a:r><a:t>Axis</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx>
  </c:plotArea>
</c:chart>
</c:chartSpace>`)

	title, series, ok := parseChartXML(data)
	if !ok {
		t.Fatal("expected a series")
	}
	if title != "Q1 Revenue" {
		t.Errorf("title = %q", title)
	}
	if series.Name != "Data!$B$1" || series.CategoryRange != "Data!$A$2:$A$3" || series.ValueRange != "Data!$B$2:$B$3" {
		t.Errorf("unexpected series %+v", series)
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target, base, expected string
	}{
		{"../drawings/drawing1.xml", "xl/worksheets", "xl/drawings/drawing1.xml"},
		{"/xl/worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}
	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, tt.base); got != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q", tt.target, tt.base, got, tt.expected)
		}
	}

	if got := relsPathFor("xl/drawings/drawing1.xml"); got != "xl/drawings/_rels/drawing1.xml.rels" {
		t.Errorf("relsPathFor = %q", got)
	}
}
