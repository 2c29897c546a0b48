// Package sheetpdf flattens a spreadsheet into plain text and composes a PDF
// document from it.
package sheetpdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/parser"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the default config path.
const ConfigEnv = "SHEETPDF_CONFIG"

// DefaultOutputName is the file name of the generated document.
const DefaultOutputName = "converted_document.pdf"

// Config is the complete pipeline configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Page    PageConfig    `yaml:"page"`
	Font    FontConfig    `yaml:"font"`
	Content ContentConfig `yaml:"content"`
	Log     LogConfig     `yaml:"log"`
}

// SourceConfig selects the input workbook.
type SourceConfig struct {
	// Dir is searched for the first file ending in Extension.
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
	// Sheet names the sheet to read; empty means the first sheet.
	Sheet string `yaml:"sheet"`
	// PrintArea restricts extraction to the sheet's first print area.
	PrintArea bool `yaml:"print_area"`
}

// OutputConfig places the generated document.
type OutputConfig struct {
	// Dir defaults to the source directory.
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
	// Verify validates the rendered PDF before writing it.
	// If nil, defaults to true.
	Verify *bool `yaml:"verify"`
	// Compress enables PDF stream compression.
	// If nil, defaults to true.
	Compress *bool `yaml:"compress"`
}

// PageConfig holds the page layout.
type PageConfig struct {
	Size    string         `yaml:"size"`
	Margins models.Margins `yaml:"margins"`
	Origin  models.Point   `yaml:"origin"`
}

// FontConfig selects the text font.
type FontConfig struct {
	// Style is regular, bold or italic. Anything else resolves to regular.
	Style string  `yaml:"style"`
	Size  float64 `yaml:"size"`
	// Dir holds <font-id>.ttf files such as Roboto-Bold.ttf.
	Dir string `yaml:"dir"`
}

// ContentConfig enables the optional document content.
type ContentConfig struct {
	// Image is the path of a PNG, JPEG or GIF placed below the text.
	Image string `yaml:"image"`
	// Table renders the detected table region of the sheet.
	Table bool `yaml:"table"`
	// Chart renders the first chart of the sheet as a bar chart.
	Chart bool `yaml:"chart"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when no file is given: the
// first .xlsx in the user's Downloads folder, A4 pages with 50pt margins and
// the regular font.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Dir:       DefaultSourceDir(),
			Extension: parser.DefaultExtension,
		},
		Output: OutputConfig{
			Name: DefaultOutputName,
		},
		Page: PageConfig{
			Size:    string(models.PageA4),
			Margins: models.UniformMargins(DefaultMargin),
			Origin:  DefaultOrigin,
		},
		Font: FontConfig{
			Style: StyleRegular.String(),
			Size:  DefaultFontSize,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultSourceDir returns ~/Downloads, or the working directory when the
// home directory is unknown.
func DefaultSourceDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted later.
func (c Config) Validate() error {
	var errs []error
	if c.Source.Extension == "" {
		errs = append(errs, errors.New("source.extension is empty"))
	}
	if c.Output.Name == "" || strings.ContainsAny(c.Output.Name, `/\`) {
		errs = append(errs, fmt.Errorf("output.name %q must be a plain file name", c.Output.Name))
	}
	if _, ok := models.ParsePageSize(c.Page.Size); !ok && c.Page.Size != "" {
		errs = append(errs, fmt.Errorf("page.size %q is not one of A3, A4, A5, Letter, Legal", c.Page.Size))
	}
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level: %w", err))
		}
	}
	return errors.Join(errs...)
}

// ShouldVerify returns whether rendered documents are validated.
func (o OutputConfig) ShouldVerify() bool {
	if o.Verify != nil {
		return *o.Verify
	}
	return true
}

// ShouldCompress returns whether PDF streams are compressed.
func (o OutputConfig) ShouldCompress() bool {
	if o.Compress != nil {
		return *o.Compress
	}
	return true
}

// OutputPath returns where the document is written.
func (c Config) OutputPath() string {
	dir := c.Output.Dir
	if dir == "" {
		dir = c.Source.Dir
	}
	return filepath.Join(dir, c.Output.Name)
}

// ExtractOptions derives the extraction options.
func (c Config) ExtractOptions() ExtractOptions {
	return ExtractOptions{
		Sheet:     c.Source.Sheet,
		PrintArea: c.Source.PrintArea,
		Table:     c.Content.Table,
		Chart:     c.Content.Chart,
	}
}

// PageSize returns the configured page size; unset means A4.
func (c Config) PageSize() models.PageSize {
	if p, ok := models.ParsePageSize(c.Page.Size); ok {
		return p
	}
	return models.PageA4
}

// Build creates the logger described by c.
func (c LogConfig) Build() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if c.Level != "" {
		level, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	return zc.Build()
}
