package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders datasets into branded lead sheets. The tables
// carry many columns, so pages are landscape and column widths are
// weighted by content.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with a title banner, a generated-on
// line and the dataset as a striped table.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 16)
		pdf.SetTextColor(249, 115, 22)
		pdf.CellFormat(0, 10, fmt.Sprintf("Edu Dham - %s", title), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", 9)
		stamp := time.Now().UTC().Format("02 Jan 2006")
		pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s, %d records", stamp, len(data.Rows)), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	widths := columnWidths(data, 277.0)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(249, 115, 22)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range data.Headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 245)
	for rowIdx, row := range data.Rows {
		fill := rowIdx%2 == 1
		for i, header := range data.Headers {
			pdf.CellFormat(widths[i], 7, row[header], "1", 0, "", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths spreads total across the headers, weighting each column
// by the widest value it has to hold.
func columnWidths(data Dataset, total float64) []float64 {
	weights := make([]float64, len(data.Headers))
	var sum float64
	for i, header := range data.Headers {
		widest := len(header)
		for _, row := range data.Rows {
			if n := len(row[header]); n > widest {
				widest = n
			}
		}
		if widest < 4 {
			widest = 4
		}
		if widest > 40 {
			widest = 40
		}
		weights[i] = float64(widest)
		sum += weights[i]
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = total * w / sum
	}
	return out
}
