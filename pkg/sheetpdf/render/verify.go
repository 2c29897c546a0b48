package render

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu would otherwise create a configuration directory under the
	// user's config dir on first use.
	api.DisableConfigDir()
}

// Verifier checks rendered bytes before they are committed to an artifact.
type Verifier interface {
	Verify(data []byte) (pages int, err error)
}

// PDFCPUVerifier validates documents with pdfcpu in relaxed mode.
type PDFCPUVerifier struct{}

var _ Verifier = PDFCPUVerifier{}

func newConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Verify validates data and returns its page count.
func (PDFCPUVerifier) Verify(data []byte) (int, error) {
	if err := api.Validate(bytes.NewReader(data), newConfig()); err != nil {
		return 0, err
	}
	return api.PageCount(bytes.NewReader(data), newConfig())
}
