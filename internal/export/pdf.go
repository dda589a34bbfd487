package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/smartmcq/mcqgen/internal/domain"
)

// WritePDF renders the printable question bank: a header with the
// generation metadata, then per record the question, lettered options
// and, when ShowAnswers allows, the answer and explanation. With no
// records the raw text is dumped line by line instead.
func WritePDF(w io.Writer, records []domain.MCQ, raw string, meta domain.GenerationMeta, opts domain.ExportOptions) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	put := func(s string) string { return tr(safeText(s)) }

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, put("Smart MCQ Generator - Question Bank"), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, put("Generated: "+meta.GeneratedAt.Format(timeLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, put(fmt.Sprintf("Difficulty: %s | Grade: %s", orNA(meta.Level), orNA(meta.Grade))), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	if len(records) == 0 {
		for _, line := range strings.Split(raw, "\n") {
			pdf.MultiCell(0, 8, put(line), "", "L", false)
		}
	} else {
		for i, m := range records {
			pdf.MultiCell(0, 8, put(fmt.Sprintf("%d. %s", i+1, m.Question)), "", "L", false)
			pdf.Ln(1)

			for idx, opt := range m.Options {
				if opt == "" {
					continue
				}
				pdf.MultiCell(0, 8, put(fmt.Sprintf("   %c) %s", 'A'+idx, opt)), "", "L", false)
			}
			pdf.Ln(1)

			if opts.ShowAnswers() {
				if m.Answer != "" {
					pdf.MultiCell(0, 8, put("Answer: "+m.Answer), "", "L", false)
				}
				if m.Explanation != "" {
					pdf.MultiCell(0, 8, put("Explanation: "+m.Explanation), "", "L", false)
				}
			}
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return errors.Wrap(err, "export failed")
	}
	_, err := w.Write(buf.Bytes())
	return errors.Wrap(err, "export failed")
}

// safeText transliterates anything outside the single-byte printable
// range into '?'. The built-in PDF fonts cover cp1252 only, and the
// replacement is deliberately lossy and deterministic.
func safeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r >= 0x20 && r <= 0x7e, r >= 0xa0 && r <= 0xff:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
