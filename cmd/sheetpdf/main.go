// Package main provides the CLI entry point for sheetpdf.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/output"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/parser"
	"go.uber.org/zap"
)

var (
	configPath string
	outputPath string
	outputName string
	pageSize   string
	margin     float64
	fontStyle  string
	fontDir    string
	imagePath  string
	sheetName  string
	withTable  bool
	withChart  bool
	printArea  bool
	noVerify   bool
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetpdf [dir]",
		Short: "Convert the first spreadsheet in a folder to PDF",
		Long: `sheetpdf loads the first .xlsx file found in a folder (default: ~/Downloads),
flattens its first sheet into text and writes converted_document.pdf next to it.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	extractCmd := &cobra.Command{
		Use:   "extract [file-or-dir]",
		Short: "Print the text extracted from a spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file (default: $"+sheetpdf.ConfigEnv+")")
	pf.StringVarP(&outputPath, "output", "o", "", "Output directory, or the text file for extract")
	pf.StringVar(&sheetName, "sheet", "", "Sheet to read (default: first sheet)")
	pf.BoolVar(&printArea, "print-area", false, "Restrict extraction to the sheet's print area")
	pf.BoolVar(&debug, "debug", false, "Enable development logging at debug level")

	rootCmd.Flags().StringVar(&outputName, "name", sheetpdf.DefaultOutputName, "Output file name")
	rootCmd.Flags().StringVar(&pageSize, "page-size", "A4", "Page size: A3, A4, A5, Letter, Legal")
	rootCmd.Flags().Float64Var(&margin, "margin", sheetpdf.DefaultMargin, "Margin on every side in points")
	rootCmd.Flags().StringVar(&fontStyle, "font-style", "regular", "Font style: regular, bold, italic")
	rootCmd.Flags().StringVar(&fontDir, "font-dir", "", "Directory with Roboto-*.ttf fonts")
	rootCmd.Flags().StringVar(&imagePath, "image", "", "Image placed below the text")
	rootCmd.Flags().BoolVar(&withTable, "table", false, "Render the detected table")
	rootCmd.Flags().BoolVar(&withChart, "chart", false, "Render the first chart as a bar chart")
	rootCmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip validation of the generated PDF")

	rootCmd.AddCommand(extractCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	svc := sheetpdf.NewService(cfg, sheetpdf.WithLogger(logger))

	sess, err := svc.OnLoadRequested()
	if err != nil {
		return notify(err)
	}
	fmt.Fprintln(os.Stderr, sheetpdf.LoadedNotice(sess))

	res, err := svc.OnGenerateRequested(sess)
	if err != nil {
		return notify(err)
	}
	fmt.Fprintln(os.Stderr, sheetpdf.GeneratedNotice(res))
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	path := cfg.Source.Dir
	if len(args) > 0 {
		path = args[0]
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		found, err := parser.FindSource(path, cfg.Source.Extension)
		if err != nil {
			if errors.Is(err, parser.ErrNoCandidates) {
				err = sheetpdf.NewError("extract", path, sheetpdf.ErrSourceNotFound, err)
			}
			return notify(err)
		}
		path = found
	}

	ext, err := sheetpdf.ExtractFile(path, cfg.ExtractOptions())
	if err != nil {
		return notify(err)
	}
	logger.Debug("extracted", zap.String("file", ext.Source), zap.String("sheet", ext.Sheet), zap.Int("rows", ext.Rows))

	if outputPath == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), ext.Text)
		return err
	}
	if _, err := output.WriteFile(outputPath, func(w io.Writer) error {
		_, err := io.WriteString(w, ext.Text)
		return err
	}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadConfig reads --config (or $SHEETPDF_CONFIG) and applies the flags the
// user set explicitly on top of it.
func loadConfig(cmd *cobra.Command, args []string) (sheetpdf.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(sheetpdf.ConfigEnv)
	}

	cfg := sheetpdf.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = sheetpdf.LoadConfig(path); err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if len(args) > 0 {
		cfg.Source.Dir = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Source.Sheet = sheetName
	}
	if flags.Changed("print-area") {
		cfg.Source.PrintArea = printArea
	}
	if flags.Changed("debug") && debug {
		cfg.Log.Development = true
		cfg.Log.Level = "debug"
	}
	if cmd.Name() == "extract" {
		return cfg, nil
	}

	if flags.Changed("output") {
		cfg.Output.Dir = outputPath
	}
	if flags.Changed("name") {
		cfg.Output.Name = outputName
	}
	if flags.Changed("page-size") {
		cfg.Page.Size = pageSize
	}
	if flags.Changed("margin") {
		cfg.Page.Margins = models.UniformMargins(margin)
	}
	if flags.Changed("font-style") {
		cfg.Font.Style = fontStyle
	}
	if flags.Changed("font-dir") {
		cfg.Font.Dir = fontDir
	}
	if flags.Changed("image") {
		cfg.Content.Image = imagePath
	}
	if flags.Changed("table") {
		cfg.Content.Table = withTable
	}
	if flags.Changed("chart") {
		cfg.Content.Chart = withChart
	}
	if noVerify {
		verify := false
		cfg.Output.Verify = &verify
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg sheetpdf.Config) (*zap.Logger, error) {
	logger, err := cfg.Log.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// notify prints the user-facing notice for err and returns err for the exit
// status.
func notify(err error) error {
	fmt.Fprintln(os.Stderr, sheetpdf.Notice(err))
	return err
}
