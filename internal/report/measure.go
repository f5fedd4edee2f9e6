package report

import "github.com/go-pdf/fpdf"

// Measurer converts text to the document's single-byte encoding and measures it.
// Layout only sees text through a Measurer, so wrapping matches what gets drawn.
type Measurer interface {
	Translate(s string) string
	Width(s string, st Style) float64
}

type fpdfMeasurer struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewMeasurer returns a Measurer backed by a scratch document using the core
// Helvetica metrics.
func NewMeasurer() Measurer {
	return newFpdfMeasurer(newPDF())
}

func newFpdfMeasurer(pdf *fpdf.Fpdf) *fpdfMeasurer {
	return &fpdfMeasurer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (m *fpdfMeasurer) Translate(s string) string {
	return m.translate(s)
}

func (m *fpdfMeasurer) Width(s string, st Style) float64 {
	setStyle(m.pdf, st)
	return m.pdf.GetStringWidth(s)
}

func newPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	return pdf
}

func setStyle(pdf *fpdf.Fpdf, st Style) {
	style := ""
	if st.Bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, st.Size)
}
