package normalize

import (
	"regexp"
	"strings"
)

var (
	questionMarkerRe = regexp.MustCompile(`(?m)^\s*\d+\.\s*`)
	paragraphGapRe   = regexp.MustCompile(`\n\s*\n`)
)

// SegmentBlocks splits freeform text into per-question spans.
//
// Lines of the form "<n>." mark question starts; each block runs from
// one marker (marker text discarded) to just before the next. Text
// before the first marker does not belong to any block. When no
// numbered markers exist at all, blank-line separated paragraphs are
// used instead. Blocks that are empty after trimming are dropped.
func SegmentBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var spans []string
	if marks := questionMarkerRe.FindAllStringIndex(text, -1); len(marks) > 0 {
		for i, m := range marks {
			end := len(text)
			if i+1 < len(marks) {
				end = marks[i+1][0]
			}
			spans = append(spans, text[m[1]:end])
		}
	} else {
		spans = paragraphGapRe.Split(text, -1)
	}

	blocks := make([]string, 0, len(spans))
	for _, s := range spans {
		if s = strings.TrimSpace(s); s != "" {
			blocks = append(blocks, s)
		}
	}
	return blocks
}
