package models

import "strings"

// PageSize is a standard paper size name.
type PageSize string

const (
	PageA3     PageSize = "A3"
	PageA4     PageSize = "A4"
	PageA5     PageSize = "A5"
	PageLetter PageSize = "Letter"
	PageLegal  PageSize = "Legal"
)

// pageDims holds portrait width and height in points (1" = 72pt).
var pageDims = map[PageSize][2]float64{
	PageA3:     {841.89, 1190.55},
	PageA4:     {595.28, 841.89},
	PageA5:     {419.53, 595.28},
	PageLetter: {612, 792},
	PageLegal:  {612, 1008},
}

// ParsePageSize matches s case-insensitively against the known sizes.
func ParsePageSize(s string) (PageSize, bool) {
	for p := range pageDims {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, true
		}
	}
	return "", false
}

// Valid reports whether p is one of the known sizes.
func (p PageSize) Valid() bool {
	_, ok := pageDims[p]
	return ok
}

// Points returns the portrait width and height in points.
func (p PageSize) Points() (w, h float64) {
	d := pageDims[p]
	return d[0], d[1]
}

// Margins are page margins in points.
type Margins struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// UniformMargins returns margins of v on every side.
func UniformMargins(v float64) Margins {
	return Margins{Top: v, Right: v, Bottom: v, Left: v}
}

// IsZero reports whether no margin was set.
func (m Margins) IsZero() bool {
	return m == Margins{}
}

// Point is a position on the page in points, measured from the top-left corner.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Table is tabular content placed after the text.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Request groups everything the renderer needs to produce one document.
type Request struct {
	PageSize PageSize `json:"page_size"`
	Margins  Margins  `json:"margins"`
	// Font is a font identifier such as "Roboto-Bold".
	Font     string  `json:"font"`
	FontSize float64 `json:"font_size"`
	Text     string  `json:"text"`
	Origin   Point   `json:"origin"`

	// ImagePath, Chart and Table are optional and independent of each other.
	ImagePath string     `json:"image_path,omitempty"`
	Chart     *ChartData `json:"chart,omitempty"`
	Table     *Table     `json:"table,omitempty"`

	Title   string `json:"title,omitempty"`
	Author  string `json:"author,omitempty"`
	Creator string `json:"creator,omitempty"`
}
