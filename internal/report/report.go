// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders plain text into a paginated PDF with a title
// header and page-number footer on every page.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// DefaultTitle is the header printed when no title is configured.
const DefaultTitle = "PubMed Research Report"

// Body layout, in millimetres and points.
const (
	bodyFont       = "Arial"
	bodyFontSize   = 10.0
	bodyLineHeight = 10.0
)

// Decorator draws a page decoration (header or footer) on the current page.
type Decorator func(pdf *fpdf.Fpdf)

// Renderer converts text into a PDF. Header and Footer are invoked for
// every page; nil skips the decoration.
type Renderer struct {
	Header Decorator
	Footer Decorator

	// Uncompressed disables stream compression so content is readable.
	Uncompressed bool
}

// New returns a Renderer with a centered title header and a centered
// "Page N" footer. An empty title uses DefaultTitle.
func New(title string) *Renderer {
	if title == "" {
		title = DefaultTitle
	}
	return &Renderer{
		Header: TitleHeader(title),
		Footer: PageNumberFooter(),
	}
}

// TitleHeader draws title in bold, centered, followed by a 10mm gap.
func TitleHeader(title string) Decorator {
	safe := ToLatin1(title)
	return func(pdf *fpdf.Fpdf) {
		pdf.SetFont(bodyFont, "B", 12)
		pdf.CellFormat(0, 10, safe, "", 1, "C", false, 0, "")
		pdf.Ln(10)
	}
}

// PageNumberFooter draws "Page N" in italics, centered, 15mm from the
// bottom edge.
func PageNumberFooter() Decorator {
	return func(pdf *fpdf.Fpdf) {
		pdf.SetY(-15)
		pdf.SetFont(bodyFont, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	}
}

// Render lays text out on A4 pages and returns the encoded document.
// Text is first reduced to Latin-1 (see ToLatin1), so any input renders.
// The error only reports faults inside the PDF library.
func (r *Renderer) Render(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(!r.Uncompressed)
	pdf.SetCreator("pubmed-rag", false)
	if r.Header != nil {
		pdf.SetHeaderFunc(func() { r.Header(pdf) })
	}
	if r.Footer != nil {
		pdf.SetFooterFunc(func() { r.Footer(pdf) })
	}

	pdf.AddPage()
	pdf.SetFont(bodyFont, "", bodyFontSize)
	pdf.MultiCell(0, bodyLineHeight, ToLatin1(text), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}
