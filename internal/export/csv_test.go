package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmcq/mcqgen/internal/domain"
)

var testMeta = domain.GenerationMeta{
	Level:       "Intermediate",
	Grade:       "Grade 5",
	GeneratedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
}

func TestWriteCSVColumnOrder(t *testing.T) {
	records := []domain.MCQ{
		{
			Question:    "What is 2+2?",
			Options:     [domain.OptionCount]string{"3", "4", "5", "6"},
			Answer:      "b) 4",
			Explanation: "Basic arithmetic",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records, "", testMeta))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"question", "option_a", "option_b", "option_c", "option_d",
		"answer", "explanation", "difficulty", "grade", "generated_date",
	}, rows[0])
	assert.Equal(t, []string{
		"What is 2+2?", "3", "4", "5", "6", "b) 4", "Basic arithmetic",
		"Intermediate", "Grade 5", "2025-03-14 09:26:53",
	}, rows[1])
}

func TestWriteCSVDegradesToRawText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, "line one\nline two", testMeta))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"text"}, {"line one"}, {"line two"}}, rows)
}

func TestWriteCSVMissingMetadata(t *testing.T) {
	records := []domain.MCQ{{Question: "Q"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records, "", domain.GenerationMeta{GeneratedAt: testMeta.GeneratedAt}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "N/A", rows[1][7])
	assert.Equal(t, "N/A", rows[1][8])
}
