// Package domain holds the shared value types passed between the
// normalization engine, the provider clients and the export encoders.
package domain

import "time"

// OptionCount is the fixed number of option slots per question.
// Slots are indexed by label: a=0, b=1, c=2, d=3.
const OptionCount = 4

// MCQ is the canonical record for one multiple-choice question,
// independent of whether it came from a structured provider response
// or from freeform text. Missing fields stay empty, never nil.
type MCQ struct {
	Question    string              `json:"question"`
	Options     [OptionCount]string `json:"options"`
	Answer      string              `json:"answer"`
	Explanation string              `json:"explanation"`
}

// IsEmpty reports whether no probe recovered anything for this record.
func (m MCQ) IsEmpty() bool {
	if m.Question != "" || m.Answer != "" || m.Explanation != "" {
		return false
	}
	for _, opt := range m.Options {
		if opt != "" {
			return false
		}
	}
	return true
}

// HasOptions reports whether at least one option slot is populated.
func (m MCQ) HasOptions() bool {
	for _, opt := range m.Options {
		if opt != "" {
			return true
		}
	}
	return false
}

// GenerationParams describes one generation request to the provider.
type GenerationParams struct {
	Content string // topic text or extracted document text
	Level   string // difficulty label, e.g. "Intermediate"
	Grade   string // audience label, e.g. "Grade 5"
	NumMCQs int
}

// GenerationMeta is carried alongside the raw provider output and
// stamped into exports.
type GenerationMeta struct {
	Level       string    `json:"level"`
	Grade       string    `json:"grade"`
	NumMCQs     int       `json:"num_mcqs"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ExportOptions gates what the encoders write out.
type ExportOptions struct {
	IncludeAnswers bool
	ExamMode       bool
}

// ShowAnswers reports whether answers and explanations belong in the
// exported document. Exam mode always wins over IncludeAnswers.
func (o ExportOptions) ShowAnswers() bool {
	return o.IncludeAnswers && !o.ExamMode
}
