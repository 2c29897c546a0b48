// Package render turns a composition request into PDF bytes.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"go.uber.org/zap"
)

// Renderer writes the document described by req to w.
type Renderer interface {
	Render(req models.Request, w io.Writer) error
}

// Options configures the gofpdf renderer.
type Options struct {
	// FontDir holds <font-id>.ttf files. Identifiers without a file fall
	// back to the Helvetica core font.
	FontDir string
	// Compress enables stream compression.
	Compress bool
}

// PDF is a Renderer backed by gofpdf. It expects a normalized request.
type PDF struct {
	opts   Options
	logger *zap.Logger
}

var _ Renderer = (*PDF)(nil)

// NewPDF returns a gofpdf based renderer.
func NewPDF(opts Options, logger *zap.Logger) *PDF {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDF{opts: opts, logger: logger}
}

// document carries the per-render state.
type document struct {
	*gofpdf.Fpdf
	face     face
	fontSize float64
	ht       float64
	width    float64 // content width between the margins
	bottom   float64 // y of the bottom margin
	left     float64
}

// Render lays out the text at req.Origin and appends the optional image,
// chart and table below it, breaking pages at the bottom margin.
func (p *PDF) Render(req models.Request, w io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        string(req.PageSize),
		FontDirStr:     p.opts.FontDir,
	})
	pdf.SetCompression(p.opts.Compress)
	pdf.SetMargins(req.Margins.Left, req.Margins.Top, req.Margins.Right)
	pdf.SetAutoPageBreak(true, req.Margins.Bottom)
	pdf.SetTitle(req.Title, true)
	pdf.SetAuthor(req.Author, true)
	pdf.SetCreator(req.Creator, true)

	pWidth, pHeight := pdf.GetPageSize()
	doc := &document{
		Fpdf:     pdf,
		face:     loadFont(pdf, p.opts.FontDir, req.Font, p.logger),
		fontSize: req.FontSize,
		ht:       req.FontSize * 1.25,
		width:    pWidth - req.Margins.Left - req.Margins.Right,
		bottom:   pHeight - req.Margins.Bottom,
		left:     req.Margins.Left,
	}

	pdf.AddPage()
	doc.setFont("", doc.fontSize)
	doc.text(req.Origin, req.Text)

	if req.ImagePath != "" {
		if err := doc.image(req.ImagePath); err != nil {
			return err
		}
	}
	if req.Chart != nil && len(req.Chart.Values) > 0 {
		doc.chart(*req.Chart)
	}
	if req.Table != nil && len(req.Table.Headers) > 0 {
		doc.table(*req.Table)
	}

	if pdf.Err() {
		return pdf.Error()
	}
	p.logger.Debug("document laid out",
		zap.Int("pages", pdf.PageCount()),
		zap.String("font", doc.face.Family),
		zap.String("page_size", string(req.PageSize)))
	return pdf.Output(w)
}

func (d *document) setFont(extraStyle string, size float64) {
	style := d.face.Style
	if extraStyle != "" && !strings.Contains(style, extraStyle) {
		style += extraStyle
	}
	d.SetFont(d.face.Family, style, size)
}

// text flows s from origin; continuation lines and pages keep origin.X as
// their left edge.
func (d *document) text(origin models.Point, s string) {
	d.SetLeftMargin(origin.X)
	d.SetXY(origin.X, origin.Y)
	d.MultiCell(0, d.ht, d.face.Encode(s), "", "L", false)
	d.SetLeftMargin(d.left)
	d.SetX(d.left)
}

// ensureSpace starts a new page when h does not fit above the bottom margin.
func (d *document) ensureSpace(h float64) {
	if d.GetY()+h > d.bottom {
		d.AddPage()
	}
}

func (d *document) image(path string) error {
	opts := gofpdf.ImageOptions{ReadDpi: true}
	info := d.RegisterImageOptions(path, opts)
	if d.Err() || info == nil {
		return fmt.Errorf("image %s: %w", path, d.Error())
	}

	w, h := info.Extent()
	if w > d.width {
		h = h * d.width / w
		w = d.width
	}
	d.Ln(d.ht)
	d.ImageOptions(path, d.left, 0, w, h, true, opts, 0, "")
	return nil
}

const (
	chartHeight = 160.0
	barFill     = 0.6
)

// chart draws c as a single-series bar chart with the title above and
// category labels below the baseline.
func (d *document) chart(c models.ChartData) {
	labelHt := d.ht
	d.Ln(d.ht)
	d.ensureSpace(d.ht + chartHeight + labelHt)

	if c.Title != "" {
		d.setFont("B", d.fontSize)
		d.CellFormat(d.width, d.ht, d.face.Encode(c.Title), "", 1, "C", false, 0, "")
		d.setFont("", d.fontSize)
	}

	top := d.GetY()
	base := top + chartHeight
	slot := d.width / float64(len(c.Values))
	peak := c.Max()

	d.SetDrawColor(0, 0, 0)
	d.Line(d.left, base, d.left+d.width, base)
	d.SetFillColor(79, 129, 189)

	small := d.fontSize * 0.75
	d.setFont("", small)
	for i, v := range c.Values {
		x := d.left + float64(i)*slot
		if peak > 0 && v > 0 {
			h := (chartHeight - labelHt) * v / peak
			d.Rect(x+slot*(1-barFill)/2, base-h, slot*barFill, h, "F")
			d.SetXY(x, base-h-labelHt)
			d.CellFormat(slot, labelHt, models.FormatNumber(v), "", 0, "C", false, 0, "")
		}
		if i < len(c.Labels) {
			d.SetXY(x, base)
			d.CellFormat(slot, labelHt, d.face.Encode(c.Labels[i]), "", 0, "C", false, 0, "")
		}
	}
	d.setFont("", d.fontSize)
	d.SetXY(d.left, base+labelHt)
}

// table draws t as a bordered grid with equal column widths and a shaded
// header row.
func (d *document) table(t models.Table) {
	cols := len(t.Headers)
	colWidth := d.width / float64(cols)
	rowHt := d.ht * 1.5

	d.Ln(d.ht)
	d.ensureSpace(2 * rowHt)

	d.SetFillColor(230, 230, 230)
	d.setFont("B", d.fontSize)
	d.row(t.Headers, cols, colWidth, rowHt, true)

	d.setFont("", d.fontSize)
	for _, values := range t.Rows {
		d.ensureSpace(rowHt)
		d.row(values, cols, colWidth, rowHt, false)
	}
}

func (d *document) row(values []string, cols int, colWidth, rowHt float64, fill bool) {
	d.SetX(d.left)
	for i := 0; i < cols; i++ {
		var v string
		if i < len(values) {
			v = values[i]
		}
		ln := 0
		if i == cols-1 {
			ln = 1
		}
		d.CellFormat(colWidth, rowHt, d.face.Encode(v), "1", ln, "L", fill, 0, "")
	}
}
