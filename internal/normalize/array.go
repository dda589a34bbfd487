package normalize

import (
	"strconv"

	"github.com/smartmcq/mcqgen/internal/domain"
)

// structuredElement is one array element that matched the declared
// provider schema. Elements that do not carry a keyed mapping classify
// to nothing and become blank records, so the output list always has
// one record per input element.
type structuredElement struct {
	Question    string
	Options     []string
	Answer      string
	Explanation string
}

// classify validates one generic array element at the boundary.
// Field-level tolerance lives here and nowhere else: absent keys and
// wrong-shaped values default to empty.
func classify(v any) (structuredElement, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return structuredElement{}, false
	}
	el := structuredElement{
		Question:    scalarText(m["question"]),
		Answer:      scalarText(m["answer"]),
		Explanation: scalarText(m["explanation"]),
	}
	if opts, ok := m["options"].([]any); ok {
		el.Options = make([]string, 0, len(opts))
		for _, o := range opts {
			el.Options = append(el.Options, scalarText(o))
		}
	}
	return el, true
}

// scalarText renders a decoded JSON scalar as text. Containers and
// null render as empty, matching the tolerant-parser contract.
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// NormalizeArray maps a parsed generic array onto canonical records,
// one per element in source order. Option lists shorter than four
// slots pad with empty strings; longer ones truncate.
func NormalizeArray(arr []any) []domain.MCQ {
	records := make([]domain.MCQ, 0, len(arr))
	for _, v := range arr {
		el, ok := classify(v)
		if !ok {
			records = append(records, domain.MCQ{})
			continue
		}
		rec := domain.MCQ{
			Question:    el.Question,
			Answer:      el.Answer,
			Explanation: el.Explanation,
		}
		for i := 0; i < domain.OptionCount && i < len(el.Options); i++ {
			rec.Options[i] = el.Options[i]
		}
		records = append(records, rec)
	}
	return records
}
