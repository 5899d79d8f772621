package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestEstimateYearsDateRanges(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name:     "abbreviated months",
			text:     "Software Engineer, Jan 2019 to Jan 2022",
			expected: 3.0,
		},
		{
			name:     "whole-month delta rounds down across partial years",
			text:     "Jan 2019 to Dec 2021",
			expected: 2.9, // 35 months
		},
		{
			name:     "full month names",
			text:     "January 2020 to January 2023",
			expected: 3.0,
		},
		{
			name:     "en dash separator",
			text:     "mar 2021 – mar 2023",
			expected: 2.0,
		},
		{
			name:     "hyphen separator with dotted month",
			text:     "Sep. 2018 - Sep. 2020",
			expected: 2.0,
		},
		{
			name:     "multiple ranges accumulate",
			text:     "Acme: Jan 2018 to Jan 2020. Globex: Feb 2020 to Feb 2021.",
			expected: 3.0,
		},
		{
			name: "overlapping tenures double-count",
			// Two concurrent part-time roles over the same two years.
			text:     "Jan 2019 to Jan 2021 and also Jan 2019 to Jan 2021",
			expected: 4.0,
		},
		{
			name:     "garbled reversed range ignored",
			text:     "Jan 2022 to Jan 2020",
			expected: 0.0,
		},
		{
			name:     "nothing matches",
			text:     "No employment history provided.",
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, estimateYearsAt(tt.text, fixedNow), 1e-9)
		})
	}
}

func TestEstimateYearsPresent(t *testing.T) {
	text := "Backend Engineer, Jan 2019 to Present"

	got := estimateYearsAt(text, fixedNow)
	assert.InDelta(t, 6.4, got, 1e-9) // jan 2019 -> jun 2025 = 77 months

	// Grows monotonically with the clock and never drops below whole years
	// since the start.
	later := estimateYearsAt(text, fixedNow.AddDate(1, 0, 0))
	assert.Greater(t, later, got)
	assert.GreaterOrEqual(t, later, 7.0) // at least current_year - 2019
}

func TestEstimateYearsExplicitPhraseFallback(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name:     "plus years phrase",
			text:     "5+ years of experience in backend development",
			expected: 5.0,
		},
		{
			name:     "decimal years",
			text:     "2.5 years working with Kubernetes",
			expected: 2.5,
		},
		{
			name:     "yrs abbreviation",
			text:     "7 yrs in infrastructure",
			expected: 7.0,
		},
		{
			name:     "experience followed by number",
			text:     "total experience of 4",
			expected: 4.0,
		},
		{
			name:     "fallback ignored when date ranges matched",
			text:     "Jan 2020 to Jan 2021. Claims 10+ years of experience.",
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, estimateYearsAt(tt.text, fixedNow), 1e-9)
		})
	}
}

func TestEstimateYearsNeverNegative(t *testing.T) {
	texts := []string{
		"",
		"Dec 2030 to Jan 2000",
		"random words only",
	}
	for _, text := range texts {
		assert.GreaterOrEqual(t, estimateYearsAt(text, fixedNow), 0.0)
	}
}
