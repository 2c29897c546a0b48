package sheetpdf

import "strings"

// FontStyle selects the document font. The zero value is unset and
// resolves like StyleRegular.
type FontStyle int

const (
	StyleUnset FontStyle = iota
	StyleRegular
	StyleBold
	StyleItalic
)

// Font identifiers handed to the renderer.
const (
	FontRegular = "Roboto-Regular"
	FontBold    = "Roboto-Bold"
	FontItalic  = "Roboto-Italic"
)

// ResolveFont maps a style to its font identifier. It is the only place an
// unset or unrecognized style is normalized, and it always yields
// FontRegular for those.
func ResolveFont(style FontStyle) string {
	switch style {
	case StyleBold:
		return FontBold
	case StyleItalic:
		return FontItalic
	default:
		return FontRegular
	}
}

// ParseFontStyle maps "regular", "bold" and "italic" (any case) to a style.
// Anything else yields StyleUnset.
func ParseFontStyle(s string) FontStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular":
		return StyleRegular
	case "bold":
		return StyleBold
	case "italic":
		return StyleItalic
	default:
		return StyleUnset
	}
}

func (s FontStyle) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	default:
		return "unset"
	}
}
