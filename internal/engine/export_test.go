package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	records := []ScoreRecord{
		{
			FileName:        "jane_doe.pdf",
			CandidateName:   "Jane Doe",
			Email:           "jane@example.com",
			Score:           89.67,
			YearsExperience: 6.4,
			Similarity:      0.93,
			Matched:         []string{"go", "kubernetes", "postgresql"},
			Missing:         []string{"terraform"},
			Tag:             TagExceptional,
			Path:            ScorePathModel,
		},
		{
			FileName:        "анкета.pdf", // non-ASCII file names survive export
			CandidateName:   "",
			Email:           "",
			Score:           56.67,
			YearsExperience: 0,
			Similarity:      0,
			Matched:         nil,
			Missing:         []string{"go", "kubernetes"},
			Tag:             TagNeedsReview,
			Path:            ScorePathFallback,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	parsed, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, records, parsed)
}

func TestCSVNumericFieldsExact(t *testing.T) {
	// Values that lose precision under naive formatting.
	records := []ScoreRecord{
		{FileName: "x.pdf", Score: 66.67, YearsExperience: 2.9, Similarity: 0.07},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	parsed, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 66.67, parsed[0].Score)
	assert.Equal(t, 2.9, parsed[0].YearsExperience)
	assert.Equal(t, 0.07, parsed[0].Similarity)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)

	header := strings.Join(csvHeader, ",") + "\n"
	_, err = ReadCSV(strings.NewReader(header + "a.pdf,Jane,not-a-number,1,,,,0.5,strong,model\n"))
	assert.Error(t, err)
}

func TestWriteCSVEmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "header only")
}
