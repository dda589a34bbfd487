package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/smartmcq/mcqgen/internal/domain"
)

var (
	optionMarkerRe    = regexp.MustCompile(`(?m)^\s*([A-Da-d])[.)]\s*`)
	inlineOptionRe    = regexp.MustCompile(`^([A-Da-d])[.)]\s*(.*)`)
	answerLineRe      = regexp.MustCompile(`(?mi)^[ \t]*Answer[ \t:-]*([A-Da-d])[.)]?[ \t]*(.*)$`)
	explanationLineRe = regexp.MustCompile(`(?mi)^[ \t]*Explanation[ \t:-]*(.*)$`)
)

// ExtractRecord pulls one canonical record out of a freeform block.
//
// The four probes are independent: each scans the whole block text and
// contributes its field regardless of what the others matched. A block
// where nothing matches still yields a (blank) record; discarding empty
// spans is the segmenter's job, not ours.
func ExtractRecord(block string) domain.MCQ {
	var rec domain.MCQ

	firstMarker := scanOptions(block, &rec.Options)

	if firstMarker >= 0 {
		rec.Question = strings.TrimSpace(block[:firstMarker])
	} else {
		rec.Question = strings.TrimSpace(firstLine(block))
	}

	if !rec.HasOptions() {
		scanInlineOptions(block, &rec.Options)
	}

	rec.Answer = probeAnswer(block, rec.Options)
	rec.Explanation = probeExplanation(block)
	return rec
}

// scanOptions fills option slots from lettered marker lines. An
// option's text may span multiple lines; it runs until the next marker
// line, an answer or explanation line, or end of block. A repeated
// label overwrites the earlier slot. Returns the offset of the first
// marker, or -1 when none matched.
func scanOptions(block string, slots *[domain.OptionCount]string) int {
	marks := optionMarkerRe.FindAllStringSubmatchIndex(block, -1)
	if len(marks) == 0 {
		return -1
	}
	stops := probeLineStarts(block)
	for i, m := range marks {
		end := len(block)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		for _, s := range stops {
			if s >= m[1] {
				if s < end {
					end = s
				}
				break
			}
		}
		if idx := slotIndex(block[m[2]:m[3]]); idx >= 0 {
			slots[idx] = strings.TrimSpace(block[m[1]:end])
		}
	}
	return marks[0][0]
}

// probeLineStarts returns the sorted offsets of answer and explanation
// lines; option capture must not run into them.
func probeLineStarts(block string) []int {
	var starts []int
	for _, re := range []*regexp.Regexp{answerLineRe, explanationLineRe} {
		for _, m := range re.FindAllStringIndex(block, -1) {
			starts = append(starts, m[0])
		}
	}
	sort.Ints(starts)
	return starts
}

// scanInlineOptions is the single-line fallback used when the marker
// probe produced nothing. The first non-empty line is assumed to be the
// question and skipped; matching lines contribute only their own
// remainder, with no multi-line capture.
func scanInlineOptions(block string, slots *[domain.OptionCount]string) {
	lines := nonEmptyLines(block)
	if len(lines) < 2 {
		return
	}
	for _, ln := range lines[1:] {
		m := inlineOptionRe.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		if idx := slotIndex(m[1]); idx >= 0 {
			slots[idx] = strings.TrimSpace(m[2])
		}
	}
}

// probeAnswer resolves the answer line. With trailing text the answer
// composes as "<label>) <text>"; without it the option slot for the
// label is consulted, and an empty slot leaves just the bare label.
func probeAnswer(block string, slots [domain.OptionCount]string) string {
	m := answerLineRe.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	label := strings.ToLower(m[1])
	extra := strings.TrimSpace(m[2])
	if extra != "" {
		return label + ") " + extra
	}
	if idx := slotIndex(label); idx >= 0 && slots[idx] != "" {
		return label + ") " + slots[idx]
	}
	return label
}

func probeExplanation(block string) string {
	m := explanationLineRe.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// slotIndex maps an option label to its slot, or -1.
func slotIndex(label string) int {
	if label == "" {
		return -1
	}
	c := label[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	idx := int(c) - 'a'
	if idx < 0 || idx >= domain.OptionCount {
		return -1
	}
	return idx
}

func firstLine(block string) string {
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		return block[:i]
	}
	return block
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, ln := range strings.Split(block, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
