// Package export serializes canonical records into the two question
// bank formats: a printable PDF and tabular CSV. Encoders buffer their
// whole output before touching the writer, so a failure never leaves a
// partial file behind.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/smartmcq/mcqgen/internal/domain"
)

// timeLayout matches the timestamp format stamped into exports.
const timeLayout = "2006-01-02 15:04:05"

var csvColumns = []string{
	"question", "option_a", "option_b", "option_c", "option_d",
	"answer", "explanation", "difficulty", "grade", "generated_date",
}

// WriteCSV writes one row per record in the fixed column order. With
// no records at all it degrades to a single "text" column holding the
// raw text split by line, so the user still gets their data back.
func WriteCSV(w io.Writer, records []domain.MCQ, raw string, meta domain.GenerationMeta) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if len(records) == 0 {
		_ = cw.Write([]string{"text"})
		for _, line := range strings.Split(raw, "\n") {
			_ = cw.Write([]string{line})
		}
	} else {
		_ = cw.Write(csvColumns)
		for _, m := range records {
			_ = cw.Write([]string{
				m.Question,
				m.Options[0], m.Options[1], m.Options[2], m.Options[3],
				m.Answer,
				m.Explanation,
				orNA(meta.Level),
				orNA(meta.Grade),
				meta.GeneratedAt.Format(timeLayout),
			})
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "export failed")
	}
	_, err := w.Write(buf.Bytes())
	return errors.Wrap(err, "export failed")
}

func orNA(s string) string {
	return lo.Ternary(s == "", "N/A", s)
}
