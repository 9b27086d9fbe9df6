package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/avesh-singh/neet-pg-checker/constants"
)

// Marker phrases for layout classification, checked against the first
// page's rendered text in priority order.
var (
	stateMarkers = []string{
		"State College Name",
		"State Quota",
		"Andhra Pradesh",
	}
	multiRoundMarkers = []string{
		"Round 1 Round 2 Round 3",
		"Round-1 Round-2 Round-3",
	}
)

var (
	reFilenameRound = regexp.MustCompile(`(?i)round[\s_-]*(\d)`)
	reStray         = regexp.MustCompile(`(?i)stray`)
)

// ClassifyLayout picks a parser family from the first page's text and the
// document filename. Classification never fails: with no evidence at all
// the most common layout wins.
func ClassifyLayout(firstPageText, filename string) constants.Layout {
	for _, marker := range stateMarkers {
		if strings.Contains(firstPageText, marker) {
			return constants.LayoutState
		}
	}
	for _, marker := range multiRoundMarkers {
		if strings.Contains(firstPageText, marker) {
			return constants.LayoutAllIndiaMultiRound
		}
	}
	return constants.LayoutAllIndiaSingleRound
}

// ResolveRound recovers the counselling round from the filename, letting a
// stray-vacancy marker in the page content override it. Defaults to round 1.
func ResolveRound(filename, firstPageText string) int {
	if reStray.MatchString(firstPageText) {
		return constants.StrayRound
	}
	if reStray.MatchString(filename) {
		return constants.StrayRound
	}
	if m := reFilenameRound.FindStringSubmatch(filename); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= constants.FirstRound {
			if n > constants.LastRound {
				return constants.StrayRound
			}
			return n
		}
	}
	return constants.FirstRound
}
