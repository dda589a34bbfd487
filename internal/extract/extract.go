// Package extract turns uploaded documents into plain text for the
// generation prompt.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"

	"github.com/smartmcq/mcqgen/internal/log"
)

// FromUpload extracts the text content of an uploaded file, keyed off
// its extension. Supported: .txt and .pdf.
func FromUpload(name string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".txt", "":
		if !utf8.Valid(data) {
			return "", errors.New("text file is not valid UTF-8")
		}
		return string(data), nil
	case ".pdf":
		return fromPDF(data)
	default:
		return "", fmt.Errorf("unsupported file type %q (use .pdf or .txt)", ext)
	}
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "read pdf")
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages that cannot be decoded are skipped, not fatal.
			log.Debugf(log.Detailed, "extract: skipping pdf page %d: %v", i, err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
