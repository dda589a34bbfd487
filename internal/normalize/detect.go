package normalize

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/smartmcq/mcqgen/internal/log"
)

// DetectArray attempts to read the raw provider output as a JSON array.
// It tries the whole string first, then the substring between the first
// '[' and the last ']', then a jsonrepair pass over that substring for
// the usual provider sins (trailing commas, single quotes, unquoted
// keys). The repaired value is only accepted when it is an array.
//
// DetectArray never fails: a false return means "not structured" and
// routes the input to the freeform path.
func DetectArray(text string) ([]any, bool) {
	var whole any
	if err := json.Unmarshal([]byte(text), &whole); err == nil {
		arr, ok := whole.([]any)
		return arr, ok
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return nil, false
	}
	sub := text[start : end+1]

	var inner any
	if err := json.Unmarshal([]byte(sub), &inner); err == nil {
		arr, ok := inner.([]any)
		return arr, ok
	}

	// Only repair candidates that can hold keyed elements; without this
	// guard, bracketed prose like "[see above]" would repair into a
	// spurious array and hijack the freeform path.
	if !strings.Contains(sub, "{") {
		return nil, false
	}
	repaired, err := jsonrepair.JSONRepair(sub)
	if err != nil {
		return nil, false
	}
	var fixed any
	if err := json.Unmarshal([]byte(repaired), &fixed); err != nil {
		return nil, false
	}
	arr, ok := fixed.([]any)
	if ok {
		log.Debugf(log.Detailed, "detect: accepted repaired array of %d elements", len(arr))
	}
	return arr, ok
}
