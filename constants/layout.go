package constants

import "strings"

// Layout identifies which parser family applies to a counselling document.
type Layout string

// Stable values (store these exact strings in DB).
const (
	LayoutState               Layout = "STATE"
	LayoutAllIndiaMultiRound  Layout = "ALL_INDIA_MULTI_ROUND"
	LayoutAllIndiaSingleRound Layout = "ALL_INDIA_SINGLE_ROUND"
)

var allLayouts = []Layout{
	LayoutState,
	LayoutAllIndiaMultiRound,
	LayoutAllIndiaSingleRound,
}

// Layouts returns the known layout names for schema validation.
func Layouts() []string {
	result := make([]string, len(allLayouts))
	for i, l := range allLayouts {
		result[i] = string(l)
	}
	return result
}

// ParseLayout resolves a user-supplied layout name, case-insensitively.
func ParseLayout(input string) (Layout, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, l := range allLayouts {
		if normalized == string(l) {
			return l, true
		}
	}
	return "", false
}

// Counselling rounds. Rounds 1-3 are the regular rounds; the stray
// vacancy round runs after round 3 and is stored as round 4.
const (
	FirstRound = 1
	LastRound  = 3
	StrayRound = 4
)
