package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// fallbackFamily is the core font used when no TrueType file is available
// for a font identifier.
const fallbackFamily = "Helvetica"

// fontName is a font identifier split into family and gofpdf style.
type fontName struct {
	Family       string
	Bold, Italic bool
}

// parseFontID splits identifiers such as "Roboto-BoldItalic" into a family
// and style flags. Unknown suffixes are kept in the family name.
func parseFontID(id string) fontName {
	f := fontName{Family: id}
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return f
	}
	switch id[i+1:] {
	case "Regular":
	case "Bold":
		f.Bold = true
	case "Italic":
		f.Italic = true
	case "BoldItalic":
		f.Bold, f.Italic = true, true
	default:
		return f
	}
	f.Family = id[:i]
	return f
}

func (f fontName) Style() string {
	var a [2]byte
	b := a[:0]
	if f.Bold {
		b = append(b, 'B')
	}
	if f.Italic {
		b = append(b, 'I')
	}
	return string(b)
}

// face is a font registered with a document.
type face struct {
	Family string
	Style  string
	// Encode converts UTF-8 text into what the font expects.
	Encode func(string) string
}

// encodeCP1252 maps text into the single-byte encoding of the PDF core
// fonts; unsupported runes are replaced.
func encodeCP1252(s string) string {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, err := enc.String(s)
	if err != nil {
		return s
	}
	return out
}

func identity(s string) string { return s }

// loadFont registers the TrueType file <fontDir>/<id>.ttf when present and
// falls back to the Helvetica core font otherwise.
func loadFont(pdf *gofpdf.Fpdf, fontDir, id string, logger *zap.Logger) face {
	name := parseFontID(id)
	if fontDir != "" {
		file := id + ".ttf"
		if fi, err := os.Stat(filepath.Join(fontDir, file)); err == nil && fi.Mode().IsRegular() {
			pdf.AddUTF8Font(name.Family, name.Style(), file)
			if !pdf.Err() {
				return face{Family: name.Family, Style: name.Style(), Encode: identity}
			}
			logger.Warn("font load failed, using core font",
				zap.String("font", id), zap.Error(pdf.Error()))
			pdf.ClearError()
		}
	}
	logger.Debug("font file not available, using core font",
		zap.String("font", id), zap.String("fallback", fallbackFamily))
	return face{Family: fallbackFamily, Style: name.Style(), Encode: encodeCP1252}
}
