package sheetpdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/render"
	"go.uber.org/zap"
)

// Layout defaults applied by Normalize.
const (
	DefaultMargin   = 50.0
	DefaultFontSize = 12.0
)

// DefaultOrigin is where the text starts when the request leaves it unset.
var DefaultOrigin = models.Point{X: 50, Y: 150}

// Rendered describes a document written by Compose.
type Rendered struct {
	// Bytes is the size of the document.
	Bytes int64
	// Pages is the page count, or 0 when verification is disabled.
	Pages int
}

// Composer validates composition requests and delegates layout to a
// renderer.
type Composer struct {
	renderer render.Renderer
	verifier render.Verifier
	logger   *zap.Logger
}

// NewComposer creates a Composer. verifier may be nil to skip validation of
// the rendered bytes.
func NewComposer(renderer render.Renderer, verifier render.Verifier, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{renderer: renderer, verifier: verifier, logger: logger}
}

// Compose renders req and writes the document to w. Empty text fails with
// ErrEmptyContent before the renderer is involved. The document is rendered
// and verified in memory, so w receives nothing unless rendering succeeded.
func (c *Composer) Compose(req models.Request, w io.Writer) (*Rendered, error) {
	if req.Text == "" {
		return nil, NewError(opCompose, "", ErrEmptyContent, nil)
	}

	req, err := Normalize(req)
	if err != nil {
		return nil, NewError(opCompose, "", ErrInvalidRequest, err)
	}

	var buf bytes.Buffer
	if err := c.renderer.Render(req, &buf); err != nil {
		c.logger.Error("rendering failed", zap.String("font", req.Font), zap.Error(err))
		return nil, NewError(opCompose, "", ErrRenderFailure, err)
	}
	if buf.Len() == 0 {
		return nil, NewError(opCompose, "", ErrRenderFailure, errors.New("renderer produced no output"))
	}

	var pages int
	if c.verifier != nil {
		if pages, err = c.verifier.Verify(buf.Bytes()); err != nil {
			c.logger.Error("rendered document is invalid", zap.Int("bytes", buf.Len()), zap.Error(err))
			return nil, NewError(opCompose, "", ErrRenderFailure, err)
		}
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return nil, NewError(opCompose, "", ErrIOFailure, err)
	}
	return &Rendered{Bytes: n, Pages: pages}, nil
}

// Normalize fills unset layout fields with their defaults and rejects values
// the renderer cannot honour. Unset fields are: page size, all four margins
// at zero, font, font size and origin at (0, 0).
func Normalize(req models.Request) (models.Request, error) {
	if req.PageSize == "" {
		req.PageSize = models.PageA4
	}
	if !req.PageSize.Valid() {
		return req, fmt.Errorf("unknown page size %q", req.PageSize)
	}

	if req.Margins.IsZero() {
		req.Margins = models.UniformMargins(DefaultMargin)
	}
	m := req.Margins
	if m.Top <= 0 || m.Right <= 0 || m.Bottom <= 0 || m.Left <= 0 {
		return req, fmt.Errorf("margins must be positive, got %+v", m)
	}
	w, h := req.PageSize.Points()
	if m.Left+m.Right >= w || m.Top+m.Bottom >= h {
		return req, fmt.Errorf("margins %+v leave no printable area on %s", m, req.PageSize)
	}

	if req.Font == "" {
		req.Font = ResolveFont(StyleUnset)
	}
	if req.FontSize <= 0 {
		req.FontSize = DefaultFontSize
	}

	if req.Origin == (models.Point{}) {
		req.Origin = DefaultOrigin
	}
	if req.Origin.X < 0 || req.Origin.X >= w-m.Right || req.Origin.Y < 0 || req.Origin.Y >= h-m.Bottom {
		return req, fmt.Errorf("origin %+v is outside the printable area of %s", req.Origin, req.PageSize)
	}

	return req, nil
}
