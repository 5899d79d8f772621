package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRangeRe = regexp.MustCompile(
		`\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4})\s*(?:to|–|-)\s*(present|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4})`)
	explicitYearsRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:year|yrs|years)\b`)
	experienceNumRe   = regexp.MustCompile(`experience[^\d]{0,10}(\d+(?:\.\d+)?)`)
	monthNumbersByKey = map[string]time.Month{
		"jan": time.January, "january": time.January,
		"feb": time.February, "february": time.February,
		"mar": time.March, "march": time.March,
		"apr": time.April, "april": time.April,
		"may": time.May,
		"jun": time.June, "june": time.June,
		"jul": time.July, "july": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "september": time.September,
		"oct": time.October, "october": time.October,
		"nov": time.November, "november": time.November,
		"dec": time.December, "december": time.December,
	}
)

// EstimateYears infers total professional experience from free text. It sums
// whole-month deltas over every "Month YYYY to Month YYYY" (or "to Present")
// range found, which means overlapping tenures from concurrent jobs are
// counted twice; that matches how the screening thresholds were calibrated
// and is kept as-is. When no ranges parse, an explicit "<n>+ years" phrase
// (or "experience ... <n>") is used instead. Returns 0 when nothing matches.
func EstimateYears(text string) float64 {
	return estimateYearsAt(text, time.Now())
}

func estimateYearsAt(text string, now time.Time) float64 {
	text = strings.ToLower(text)

	totalMonths := 0
	for _, match := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, ok := parseMonthYear(match[1])
		if !ok {
			continue
		}

		var end time.Time
		if strings.TrimSpace(match[2]) == "present" {
			end = now
		} else {
			end, ok = parseMonthYear(match[2])
			if !ok {
				continue
			}
		}

		delta := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
		if delta > 0 {
			totalMonths += delta
		}
	}

	if totalMonths == 0 {
		match := explicitYearsRe.FindStringSubmatch(text)
		if match == nil {
			match = experienceNumRe.FindStringSubmatch(text)
		}
		if match != nil {
			if years, err := strconv.ParseFloat(match[1], 64); err == nil {
				return years
			}
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}

// parseMonthYear parses "jan 2019" / "january 2019" (an optional trailing dot
// on the month is tolerated). Garbled month names are rejected so the caller
// can skip the range silently.
func parseMonthYear(s string) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return time.Time{}, false
	}

	monthKey := strings.TrimSuffix(fields[0], ".")
	month, ok := monthNumbersByKey[monthKey]
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}
