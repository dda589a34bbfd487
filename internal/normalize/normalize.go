// Package normalize recovers a canonical MCQ record list from the text
// a generation provider actually returned, which may be the JSON array
// we asked for, a human-readable numbered list, or anything in between.
//
// Normalize is a pure function of its input and never fails; inputs
// with no recoverable structure produce records with empty fields.
package normalize

import (
	"github.com/smartmcq/mcqgen/internal/domain"
	"github.com/smartmcq/mcqgen/internal/log"
)

// Normalize turns raw provider output into an ordered record list.
//
// A detected structured array is authoritative: its normalized records
// are returned as-is, even when every element is blank. Otherwise the
// text is segmented into blocks and each block extracted independently.
func Normalize(raw string) []domain.MCQ {
	if arr, ok := DetectArray(raw); ok {
		log.Debugf(log.Basic, "normalize: structured array path, %d elements", len(arr))
		return NormalizeArray(arr)
	}

	blocks := SegmentBlocks(raw)
	log.Debugf(log.Basic, "normalize: freeform path, %d blocks", len(blocks))
	records := make([]domain.MCQ, 0, len(blocks))
	for _, block := range blocks {
		records = append(records, ExtractRecord(block))
	}
	return records
}
