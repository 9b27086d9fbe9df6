package constants

import "strings"

// Category is a canonical reservation category stored on admission records.
type Category string

const (
	CategoryGeneral Category = "GENERAL"
	CategoryOBC     Category = "OBC"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryEWS     Category = "EWS"
)

var allCategories = []Category{
	CategoryGeneral,
	CategoryOBC,
	CategorySC,
	CategoryST,
	CategoryEWS,
}

// CategoryTokens returns the canonical category strings as printed in
// allotment tables, used by the row parsers for cell matching.
func CategoryTokens() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// quotaAbbrevs maps the quota codes printed in counselling documents to
// their expanded names. Lookup is exact and case-sensitive: the documents
// print these codes consistently, and folding case would conflate codes
// with ordinary words.
var quotaAbbrevs = map[string]string{
	"AI":              "All India",
	"AIQ":             "All India",
	"All India Quota": "All India",
	"DU":              "Delhi University",
	"IP":              "IP University",
	"SQ":              "State Quota",
	"State":           "State Quota",
	"MNG":             "Management",
}

// categoryAbbrevs maps raw category cells to canonical categories.
var categoryAbbrevs = map[string]Category{
	"GN":      CategoryGeneral,
	"UR":      CategoryGeneral,
	"GEN":     CategoryGeneral,
	"GENERAL": CategoryGeneral,
	"OC":      CategoryGeneral,
	"OBC":     CategoryOBC,
	"BC":      CategoryOBC,
	"SC":      CategorySC,
	"ST":      CategoryST,
	"EWS":     CategoryEWS,
}

// NormalizeQuota expands a raw quota token to its canonical name.
// Unmapped tokens pass through unchanged so new quota codes keep flowing
// into the database instead of being dropped.
func NormalizeQuota(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if expanded, ok := quotaAbbrevs[trimmed]; ok {
		return expanded
	}
	return trimmed
}

// NormalizeCategory resolves a raw category cell to a canonical category
// string. Blank input always resolves to GENERAL; unmapped non-blank
// tokens pass through unchanged.
func NormalizeCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return string(CategoryGeneral)
	}
	if cat, ok := categoryAbbrevs[trimmed]; ok {
		return string(cat)
	}
	return trimmed
}
