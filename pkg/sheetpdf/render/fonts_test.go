package render

import "testing"

func TestParseFontID(t *testing.T) {
	tests := []struct {
		id     string
		family string
		style  string
	}{
		{"Roboto-Regular", "Roboto", ""},
		{"Roboto-Bold", "Roboto", "B"},
		{"Roboto-Italic", "Roboto", "I"},
		{"Roboto-BoldItalic", "Roboto", "BI"},
		{"Helvetica", "Helvetica", ""},
		{"Noto-Sans-Condensed", "Noto-Sans-Condensed", ""},
	}

	for _, tt := range tests {
		f := parseFontID(tt.id)
		if f.Family != tt.family || f.Style() != tt.style {
			t.Errorf("parseFontID(%q) = %q/%q, expected %q/%q",
				tt.id, f.Family, f.Style(), tt.family, tt.style)
		}
	}
}

func TestEncodeCP1252(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"café", "caf\xe9"},
		{"€", "\x80"},
	}

	for _, tt := range tests {
		if got := encodeCP1252(tt.input); got != tt.expected {
			t.Errorf("encodeCP1252(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}

	// Runes outside the code page are replaced rather than failing.
	if got := encodeCP1252("日本"); got == "" || got == "日本" {
		t.Errorf("encodeCP1252 did not replace unsupported runes: %q", got)
	}
}
