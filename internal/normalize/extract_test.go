package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartmcq/mcqgen/internal/domain"
)

func TestExtractRecordFullBlock(t *testing.T) {
	block := "What is 2+2?\na) 3\nb) 4\nc) 5\nd) 6\nAnswer: b\nExplanation: Basic arithmetic"
	rec := ExtractRecord(block)

	assert.Equal(t, "What is 2+2?", rec.Question)
	assert.Equal(t, [domain.OptionCount]string{"3", "4", "5", "6"}, rec.Options)
	assert.Equal(t, "b) 4", rec.Answer)
	assert.Equal(t, "Basic arithmetic", rec.Explanation)
}

func TestExtractRecordMultiLineOption(t *testing.T) {
	block := "Pick the true statement.\na) Water boils\nat 100 degrees\nb) Ice is warm"
	rec := ExtractRecord(block)

	assert.Equal(t, "Water boils\nat 100 degrees", rec.Options[0])
	assert.Equal(t, "Ice is warm", rec.Options[1])
}

func TestExtractRecordDuplicateLabelLastWins(t *testing.T) {
	block := "Q?\na) first\na) second\nb) other"
	rec := ExtractRecord(block)

	assert.Equal(t, "second", rec.Options[0])
	assert.Equal(t, "other", rec.Options[1])
}

func TestExtractRecordAnswerVariants(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{
			name:  "trailing text wins over slot",
			block: "Q?\na) 1\nb) 2\nAnswer: a) custom text",
			want:  "a) custom text",
		},
		{
			name:  "bare label resolves from slot",
			block: "Q?\na) 1\nb) 2\nAnswer: b",
			want:  "b) 2",
		},
		{
			name:  "bare label with empty slot stays bare",
			block: "Q?\na) 1\nb) 2\nAnswer: d",
			want:  "d",
		},
		{
			name:  "uppercase label is lowered",
			block: "Q?\na) 1\nAnswer: A",
			want:  "a) 1",
		},
		{
			name:  "dash separator",
			block: "Q?\na) 1\nAnswer - a",
			want:  "a) 1",
		},
		{
			name:  "label with period",
			block: "Q?\na) 1\nAnswer: a.",
			want:  "a) 1",
		},
		{
			name:  "no answer line",
			block: "Q?\na) 1",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRecord(tt.block).Answer)
		})
	}
}

func TestExtractRecordQuestionFallbackFirstLine(t *testing.T) {
	// No option markers at all: the first line is the question.
	rec := ExtractRecord("Just a statement\nwith a second line")
	assert.Equal(t, "Just a statement", rec.Question)
	assert.False(t, rec.HasOptions())
}

func TestExtractRecordInlineFallbackScan(t *testing.T) {
	// Marker lines indented with non-breaking spaces defeat the
	// multi-line probe; the single-line scan still recovers them.
	block := "Q?\n\u00a0a) alpha\n\u00a0b) beta"
	rec := ExtractRecord(block)

	assert.Equal(t, "alpha", rec.Options[0])
	assert.Equal(t, "beta", rec.Options[1])
	assert.Equal(t, "Q?", rec.Question)

	rec = ExtractRecord("Q?\nno options here\nnone at all")
	assert.False(t, rec.HasOptions())
}

func TestExtractRecordExplanationSingleLine(t *testing.T) {
	block := "Q?\na) 1\nAnswer: a\nExplanation: because reasons\nthis line is not explanation"
	rec := ExtractRecord(block)
	assert.Equal(t, "because reasons", rec.Explanation)
}

func TestExtractRecordOptionStopsAtAnswerLine(t *testing.T) {
	block := "Q?\nd) last option\nAnswer: d\nExplanation: x"
	rec := ExtractRecord(block)
	assert.Equal(t, "last option", rec.Options[3])
	assert.Equal(t, "d) last option", rec.Answer)
}

func TestExtractRecordEmptyBlockStillEmitted(t *testing.T) {
	rec := ExtractRecord("???")
	assert.Equal(t, "???", rec.Question)

	rec = ExtractRecord("")
	assert.True(t, rec.IsEmpty())
}
