package sheetpdf

import "testing"

func TestResolveFont(t *testing.T) {
	tests := []struct {
		style FontStyle
		want  string
	}{
		{StyleUnset, FontRegular},
		{StyleRegular, FontRegular},
		{StyleBold, FontBold},
		{StyleItalic, FontItalic},
		{FontStyle(42), FontRegular},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			if got := ResolveFont(tt.style); got != tt.want {
				t.Errorf("ResolveFont(%v) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestParseFontStyle(t *testing.T) {
	tests := []struct {
		in   string
		want FontStyle
	}{
		{"regular", StyleRegular},
		{"Bold", StyleBold},
		{" ITALIC ", StyleItalic},
		{"", StyleUnset},
		{"oblique", StyleUnset},
	}

	for _, tt := range tests {
		if got := ParseFontStyle(tt.in); got != tt.want {
			t.Errorf("ParseFontStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
