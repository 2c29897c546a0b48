package sheetpdf

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/output"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/parser"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/render"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Creator is recorded in the metadata of generated documents.
const Creator = "sheetpdf"

// Session carries the outcome of a load into the following generate.
// The zero value is an unloaded session.
type Session struct {
	// Source is the workbook the text was extracted from.
	Source string
	// Text is the extracted text blob.
	Text  string
	Style FontStyle
	Table *models.Table
	Chart *models.ChartData

	loaded bool
}

// Ready reports whether the session holds extracted text to compose.
func (s Session) Ready() bool {
	return s.loaded && s.Text != ""
}

// WithStyle returns a copy of s using style.
func (s Session) WithStyle(style FontStyle) Session {
	s.Style = style
	return s
}

// Result describes a generated document.
type Result struct {
	Path  string
	Bytes int64
	Pages int
}

// Service runs the two user-triggered operations. Each operation admits one
// caller at a time; a concurrent call fails with ErrBusy.
type Service struct {
	cfg      Config
	gate     PermissionGate
	composer *Composer
	logger   *zap.Logger

	loading    *semaphore.Weighted
	generating *semaphore.Weighted
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithGate replaces the default OSGate.
func WithGate(g PermissionGate) ServiceOption {
	return func(s *Service) { s.gate = g }
}

// WithComposer replaces the composer built from the configuration.
func WithComposer(c *Composer) ServiceOption {
	return func(s *Service) { s.composer = c }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates a Service for cfg.
func NewService(cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		cfg:        cfg,
		loading:    semaphore.NewWeighted(1),
		generating: semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.gate == nil {
		s.gate = OSGate{}
	}
	if s.composer == nil {
		var verifier render.Verifier
		if cfg.Output.ShouldVerify() {
			verifier = render.PDFCPUVerifier{}
		}
		renderer := render.NewPDF(render.Options{
			FontDir:  cfg.Font.Dir,
			Compress: cfg.Output.ShouldCompress(),
		}, s.logger.Named("render"))
		s.composer = NewComposer(renderer, verifier, s.logger.Named("compose"))
	}
	return s
}

// OnLoadRequested finds the first workbook in the source directory and
// extracts its text. On failure the returned session is unloaded.
func (s *Service) OnLoadRequested() (Session, error) {
	if !s.loading.TryAcquire(1) {
		return Session{}, NewError(opLoad, "", ErrBusy, nil)
	}
	defer s.loading.Release(1)

	dir := s.cfg.Source.Dir
	if err := s.gate.Check(dir, AccessRead); err != nil {
		s.logger.Error("source directory not readable", zap.String("dir", dir), zap.Error(err))
		return Session{}, NewError(opLoad, dir, fsKind(err, ErrPermissionDenied), err)
	}

	path, err := parser.FindSource(dir, s.cfg.Source.Extension)
	if err != nil {
		if errors.Is(err, parser.ErrNoCandidates) {
			s.logger.Error("no spreadsheet found",
				zap.String("dir", dir), zap.String("extension", s.cfg.Source.Extension))
			return Session{}, NewError(opLoad, dir, ErrSourceNotFound, err)
		}
		s.logger.Error("listing source directory failed", zap.String("dir", dir), zap.Error(err))
		return Session{}, NewError(opLoad, dir, fsKind(err, ErrIOFailure), err)
	}

	ext, err := ExtractFile(path, s.cfg.ExtractOptions())
	if err != nil {
		s.logger.Error("reading spreadsheet failed", zap.String("file", path), zap.Error(err))
		return Session{}, err
	}

	s.logger.Info("spreadsheet loaded",
		zap.String("file", path),
		zap.String("sheet", ext.Sheet),
		zap.Int("rows", ext.Rows),
		zap.Int("columns", ext.Columns),
		zap.Int("chars", len(ext.Text)),
		zap.Bool("table", ext.Table != nil),
		zap.Bool("chart", ext.Chart != nil))
	s.logger.Debug("extracted text", zap.String("text", ext.Text))

	return Session{
		Source: path,
		Text:   ext.Text,
		Style:  ParseFontStyle(s.cfg.Font.Style),
		Table:  ext.Table,
		Chart:  ext.Chart,
		loaded: true,
	}, nil
}

// OnGenerateRequested composes the session's text into the configured output
// file, replacing any previous document of the same name. The renderer is
// never invoked for a session without text.
func (s *Service) OnGenerateRequested(sess Session) (*Result, error) {
	if !s.generating.TryAcquire(1) {
		return nil, NewError(opGenerate, "", ErrBusy, nil)
	}
	defer s.generating.Release(1)

	if !sess.Ready() {
		s.logger.Warn("generate requested without loaded content")
		return nil, NewError(opGenerate, "", ErrEmptyContent, nil)
	}

	path := s.cfg.OutputPath()
	dir := filepath.Dir(path)
	if err := s.gate.Check(dir, AccessWrite); err != nil {
		s.logger.Error("output directory not writable", zap.String("dir", dir), zap.Error(err))
		kind := ErrPermissionDenied
		if errors.Is(err, fs.ErrNotExist) {
			kind = ErrIOFailure
		}
		return nil, NewError(opGenerate, dir, kind, err)
	}

	req := s.request(sess)
	var rendered *Rendered
	n, err := output.WriteFile(path, func(w io.Writer) error {
		var err error
		rendered, err = s.composer.Compose(req, w)
		return err
	})
	if err != nil {
		if KindOf(err) == nil {
			err = NewError(opGenerate, path, ErrIOFailure, err)
		}
		s.logger.Error("generating document failed", zap.String("file", path), zap.Error(err))
		return nil, err
	}

	s.logger.Info("document generated",
		zap.String("file", path),
		zap.Int64("bytes", n),
		zap.Int("pages", rendered.Pages),
		zap.String("font", req.Font))
	return &Result{Path: path, Bytes: n, Pages: rendered.Pages}, nil
}

// request builds the composition request for sess from the configuration.
func (s *Service) request(sess Session) models.Request {
	return models.Request{
		PageSize:  s.cfg.PageSize(),
		Margins:   s.cfg.Page.Margins,
		Font:      ResolveFont(sess.Style),
		FontSize:  s.cfg.Font.Size,
		Text:      sess.Text,
		Origin:    s.cfg.Page.Origin,
		ImagePath: s.cfg.Content.Image,
		Chart:     sess.Chart,
		Table:     sess.Table,
		Title:     filepath.Base(sess.Source),
		Creator:   Creator,
	}
}
