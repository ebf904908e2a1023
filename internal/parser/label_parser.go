package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// ParsedLabel holds the labels extracted from a one-line organize description.
type ParsedLabel struct {
	Name     string
	Category string
	Folder   string
	Summary  string
	Errors   []string
}

var (
	categoryRegex = regexp.MustCompile(`#([\p{L}\p{N}_-]+)`)
	folderRegex   = regexp.MustCompile(`@([\p{L}\p{N}_-]+)`)
)

// ParseLabel extracts labels using the inline syntax
// "Write report #deep-work @reports -- first draft".
// #category becomes "Deep Work", @folder is a folder name or id hint, and
// everything after " -- " is the summary.
func ParseLabel(input string) ParsedLabel {
	result := ParsedLabel{Errors: []string{}}

	if idx := strings.Index(input, " -- "); idx >= 0 {
		result.Summary = strings.TrimSpace(input[idx+4:])
		input = input[:idx]
	}

	categoryMatches := categoryRegex.FindAllStringSubmatch(input, -1)
	if len(categoryMatches) > 0 {
		result.Category = NormalizeCategory(categoryMatches[0][1])
		if len(categoryMatches) > 1 {
			result.Errors = append(result.Errors, "Only one #category is allowed, using '"+result.Category+"'")
		}
		input = categoryRegex.ReplaceAllString(input, "")
	}

	folderMatches := folderRegex.FindAllStringSubmatch(input, -1)
	if len(folderMatches) > 0 {
		result.Folder = folderMatches[0][1]
		if len(folderMatches) > 1 {
			result.Errors = append(result.Errors, "Only one @folder is allowed, using '"+result.Folder+"'")
		}
		input = folderRegex.ReplaceAllString(input, "")
	}

	result.Name = strings.Join(strings.Fields(input), " ")
	return result
}

// NormalizeCategory turns "deep-work" or "deep_work" into "Deep Work".
func NormalizeCategory(raw string) string {
	raw = strings.NewReplacer("-", " ", "_", " ").Replace(raw)
	words := strings.Fields(raw)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
