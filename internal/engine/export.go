package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const skillListSeparator = ", "

var csvHeader = []string{
	"file_name",
	"candidate_name",
	"score",
	"years_experience",
	"email",
	"matched_keywords",
	"missing_skills",
	"similarity",
	"tag",
	"score_path",
}

// WriteCSV exports records as a flat table suitable for spreadsheets and the
// analytics dashboard. Numeric fields use the shortest representation that
// survives a parse round-trip.
func WriteCSV(w io.Writer, records []ScoreRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.FileName,
			r.CandidateName,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			strconv.FormatFloat(r.YearsExperience, 'f', -1, 64),
			r.Email,
			strings.Join(r.Matched, skillListSeparator),
			strings.Join(r.Missing, skillListSeparator),
			strconv.FormatFloat(r.Similarity, 'f', -1, 64),
			string(r.Tag),
			string(r.Path),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a table previously produced by WriteCSV back into records.
func ReadCSV(r io.Reader) ([]ScoreRecord, error) {
	reader := csv.NewReader(r)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty CSV input")
	}

	var records []ScoreRecord
	for i, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+1, len(csvHeader), len(row))
		}

		score, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid score: %w", i+1, err)
		}
		years, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid years_experience: %w", i+1, err)
		}
		similarity, err := strconv.ParseFloat(row[7], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid similarity: %w", i+1, err)
		}

		records = append(records, ScoreRecord{
			FileName:        row[0],
			CandidateName:   row[1],
			Score:           score,
			YearsExperience: years,
			Email:           row[4],
			Matched:         splitSkillList(row[5]),
			Missing:         splitSkillList(row[6]),
			Similarity:      similarity,
			Tag:             Tag(row[8]),
			Path:            ScorePath(row[9]),
		})
	}

	return records, nil
}

func splitSkillList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, skillListSeparator)
}
