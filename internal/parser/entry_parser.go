package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRegex    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRegex  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	daysAgoRegex    = regexp.MustCompile(`^(\d+)\s+days?\s+ago$`)
	leadingNumRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// ParseAmount reads the leading number of a form field such as "1.5" or "30m".
// Empty, non-numeric or non-finite input counts as zero.
func ParseAmount(input string) float64 {
	match := leadingNumRegex.FindString(strings.TrimSpace(input))
	if match == "" {
		return 0
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ParseEntryDate parses the date of a manual entry and returns local midnight
// of that day in now's location.
// Supported formats:
// - yyyy-mm-dd (e.g., "2024-03-15")
// - dd/mm/yyyy (e.g., "15/03/2024")
// - today, yesterday, N days ago
// An empty input means today.
func ParseEntryDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if matches := daysAgoRegex.FindStringSubmatch(input); len(matches) == 2 {
		days, err := strconv.Atoi(matches[1])
		if err != nil || days > 3650 {
			return time.Time{}, fmt.Errorf("invalid number of days: %s", matches[1])
		}
		return today.AddDate(0, 0, -days), nil
	}

	if matches := isoDateRegex.FindStringSubmatch(input); len(matches) == 4 {
		return buildDate(matches[1], matches[2], matches[3], now.Location())
	}

	if matches := slashDateRegex.FindStringSubmatch(input); len(matches) == 4 {
		return buildDate(matches[3], matches[2], matches[1], now.Location())
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, yesterday or N days ago")
}

// buildDate assembles a calendar date and rejects overflowing values like 31/02.
func buildDate(y, m, d string, loc *time.Location) (time.Time, error) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return date, nil
}
