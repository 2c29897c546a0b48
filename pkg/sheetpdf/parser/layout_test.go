package parser

import "testing"

func TestParseRowLayout(t *testing.T) {
	sheetXML := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"
    xmlns:x14ac="http://schemas.microsoft.com/office/spreadsheetml/2009/9/ac">
  <sheetData>
    <row r="1"></row>
    <row r="2" spans="1:3" x14ac:dyDescent="0.25"/>
    <row r="3" spans="1:3"><c r="A3" t="s"><v>0</v></c></row>
    <row r="5" ht="30" customHeight="1"/>
    <row r="6"><c r="A6"><v>1</v></c><c r="C6"><v>2</v></c><c r="D6" s="1"/></row>
    <row><c><is><r><t>rich</t></r></is></c><c/></row>
    <row r="9" s="2" customFormat="1"/>
  </sheetData>
</worksheet>`)

	layout, err := parseRowLayout(sheetXML)
	if err != nil {
		t.Fatalf("parseRowLayout failed: %v", err)
	}

	tests := []struct {
		row     int
		present bool
		lastCol int
	}{
		{1, false, 0},
		{2, false, 0},
		{3, true, 1},
		{4, false, 0},
		{5, true, 0},
		{6, true, 4},
		{7, true, 2},
		{8, false, 0},
		{9, true, 0},
	}

	for _, tt := range tests {
		if got := layout.Present(tt.row); got != tt.present {
			t.Errorf("Present(%d) = %v, expected %v", tt.row, got, tt.present)
		}
		if got := layout.LastColumn(tt.row); got != tt.lastCol {
			t.Errorf("LastColumn(%d) = %d, expected %d", tt.row, got, tt.lastCol)
		}
	}
	if layout.MaxRow() != 9 {
		t.Errorf("MaxRow() = %d, expected 9", layout.MaxRow())
	}
}

func TestParseRowLayoutInvalid(t *testing.T) {
	if _, err := parseRowLayout([]byte(`<sheetData><row r="x"/></sheetData>`)); err == nil {
		t.Error("expected error for a non-numeric row number")
	}
	if _, err := parseRowLayout([]byte(`<sheetData><row r="1"><c r="??"/></row></sheetData>`)); err == nil {
		t.Error("expected error for an invalid cell reference")
	}
}
