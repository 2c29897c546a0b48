package sheetpdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheetpdf.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.Source.Extension != ".xlsx" {
		t.Errorf("Extension = %q", cfg.Source.Extension)
	}
	if filepath.Base(cfg.OutputPath()) != DefaultOutputName {
		t.Errorf("OutputPath = %q", cfg.OutputPath())
	}
	if filepath.Dir(cfg.OutputPath()) != cfg.Source.Dir {
		t.Errorf("output dir should default to the source dir, got %q", cfg.OutputPath())
	}
	if cfg.PageSize() != models.PageA4 {
		t.Errorf("PageSize = %q", cfg.PageSize())
	}
	if !cfg.Output.ShouldVerify() || !cfg.Output.ShouldCompress() {
		t.Error("verify and compress should default to true")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
source:
  dir: /data/in
  sheet: Summary
  print_area: true
output:
  dir: /data/out
  name: report.pdf
  verify: false
page:
  size: letter
  margins: {top: 36, right: 36, bottom: 36, left: 36}
font:
  style: bold
  size: 10
content:
  table: true
  chart: true
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Source.Dir != "/data/in" || cfg.Source.Sheet != "Summary" || !cfg.Source.PrintArea {
		t.Errorf("Source = %+v", cfg.Source)
	}
	if cfg.Source.Extension != ".xlsx" {
		t.Errorf("unset extension should keep the default, got %q", cfg.Source.Extension)
	}
	if cfg.OutputPath() != filepath.Join("/data/out", "report.pdf") {
		t.Errorf("OutputPath = %q", cfg.OutputPath())
	}
	if cfg.Output.ShouldVerify() {
		t.Error("verify should be disabled")
	}
	if cfg.PageSize() != models.PageLetter {
		t.Errorf("PageSize = %q", cfg.PageSize())
	}
	if cfg.Page.Margins != models.UniformMargins(36) {
		t.Errorf("Margins = %+v", cfg.Page.Margins)
	}
	if cfg.Page.Origin != DefaultOrigin {
		t.Errorf("Origin = %+v", cfg.Page.Origin)
	}
	if ParseFontStyle(cfg.Font.Style) != StyleBold || cfg.Font.Size != 10 {
		t.Errorf("Font = %+v", cfg.Font)
	}

	opts := cfg.ExtractOptions()
	if opts != (ExtractOptions{Sheet: "Summary", PrintArea: true, Table: true, Chart: true}) {
		t.Errorf("ExtractOptions = %+v", opts)
	}

	logger, err := cfg.Log.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "source: [unterminated"},
		{"page size", "page:\n  size: B5\n"},
		{"output name with path", "output:\n  name: ../escape.pdf\n"},
		{"empty extension", "source:\n  extension: \"\"\n"},
		{"log level", "log:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file: err = %v", err)
	}
}
