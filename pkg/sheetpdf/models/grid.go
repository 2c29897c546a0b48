// Package models defines data structures shared by the extraction and
// composition stages.
package models

import "strconv"

// Kind is the tag of a cell value.
type Kind int

const (
	// KindOther covers empty cells, formulas, errors and anything else that
	// renders as a placeholder.
	KindOther Kind = iota
	// KindText is a literal string cell.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "other"
	}
}

// Cell is a single typed value. Only the field matching Kind is meaningful.
type Cell struct {
	Kind   Kind    `json:"kind"`
	Text   string  `json:"text,omitempty"`
	Number float64 `json:"number,omitempty"`
	Bool   bool    `json:"bool,omitempty"`
}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: KindNumber, Number: v} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// EmptyCell returns a placeholder cell.
func EmptyCell() Cell { return Cell{} }

// Value renders the cell value without any separator.
// Other cells render as the empty string.
func (c Cell) Value() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return FormatNumber(c.Number)
	case KindBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// FormatNumber renders v as the shortest decimal that round-trips,
// independent of locale (42 -> "42", 200.5 -> "200.5").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Row is an ordered sequence of cells.
type Row struct {
	// R is the source row number (1-based).
	R     int    `json:"r"`
	Cells []Cell `json:"cells"`
}

// Grid is the first sheet of a workbook as rows of typed cells.
type Grid struct {
	Sheet string `json:"sheet"`
	Rows  []Row  `json:"rows"`
}

// Width returns the number of cells in the widest row.
func (g Grid) Width() int {
	w := 0
	for _, r := range g.Rows {
		if len(r.Cells) > w {
			w = len(r.Cells)
		}
	}
	return w
}
