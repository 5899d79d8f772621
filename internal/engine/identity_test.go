package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "plain email",
			text:     "Contact: jane.doe@example.com / +49 151 000",
			expected: "jane.doe@example.com",
			found:    true,
		},
		{
			name:     "first of several wins",
			text:     "a@first.io then b@second.io",
			expected: "a@first.io",
			found:    true,
		},
		{
			name:     "subdomain and hyphen",
			text:     "mail me at dev-lead@mail.corp-site.co.uk today",
			expected: "dev-lead@mail.corp-site.co.uk",
			found:    true,
		},
		{
			name:  "no email",
			text:  "no contact details at all",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractEmail(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "all caps header",
			text:     "JANE DOE\njane@example.com\nBerlin",
			expected: "Jane Doe",
			found:    true,
		},
		{
			name:     "title case name",
			text:     "John Michael Smith\nSenior engineer with 10 years\n",
			expected: "John Michael Smith",
			found:    true,
		},
		{
			name:     "longest qualifying line wins",
			text:     "Resume\nAlexandra Von Humboldt\nBerlin",
			expected: "Alexandra Von Humboldt",
			found:    true,
		},
		{
			name:     "leaked section heading stripped",
			text:     "JANE DOE SUMMARY\n\n",
			expected: "Jane Doe",
			found:    true,
		},
		{
			name:  "line with digits rejected",
			text:  "Jane Doe 1990\n+49 151\n",
			found: false,
		},
		{
			name:  "too many words rejected",
			text:  "Jane Doe The Third Of Her Name\n",
			found: false,
		},
		{
			name:  "name beyond first three lines missed",
			text:  "resume\nconfidential\nprepared 2024\nJane Doe",
			found: false,
		},
		{
			name:  "empty input",
			text:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractName(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Known failure modes of the heuristic, pinned so nobody "fixes" a test by
// accident without revisiting the approach: a job-title header that looks
// like a name is happily accepted.
func TestExtractNameFalsePositive(t *testing.T) {
	got, ok := ExtractName("Senior Staff Engineer\njane@example.com")
	assert.True(t, ok)
	assert.Equal(t, "Senior Staff Engineer", got)
}
