package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avesh-singh/neet-pg-checker/constants"
)

func TestClassifyLayout(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		filename string
		want     constants.Layout
	}{
		{
			name:     "state column header",
			text:     "S.No State College Name Course Candidate Name",
			filename: "round1.pdf",
			want:     constants.LayoutState,
		},
		{
			name:     "state quota phrase",
			text:     "Allotments under State Quota for the academic year",
			filename: "round2.pdf",
			want:     constants.LayoutState,
		},
		{
			name:     "state board name",
			text:     "Government of Andhra Pradesh Allotment List",
			filename: "allotments.pdf",
			want:     constants.LayoutState,
		},
		{
			name:     "multi round header",
			text:     "Rank Round 1 Round 2 Round 3 Remarks",
			filename: "combined.pdf",
			want:     constants.LayoutAllIndiaMultiRound,
		},
		{
			name:     "no markers default to single round",
			text:     "Provisional Allotment List",
			filename: "round3.pdf",
			want:     constants.LayoutAllIndiaSingleRound,
		},
		{
			name:     "empty first page",
			text:     "",
			filename: "scan.pdf",
			want:     constants.LayoutAllIndiaSingleRound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLayout(tt.text, tt.filename))
		})
	}
}

func TestResolveRound(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     int
	}{
		{"round in filename", "allotment_round_2.pdf", "", 2},
		{"round without separator", "round3_final.pdf", "", 3},
		{"mixed case", "ROUND 1 list.pdf", "", 1},
		{"no round defaults to first", "allotments.pdf", "", constants.FirstRound},
		{"stray in filename", "stray_vacancy_list.pdf", "", constants.StrayRound},
		{"round past the regular rounds is stray", "round5.pdf", "", constants.StrayRound},
		{"stray in content overrides filename round", "round1.pdf", "Stray Vacancy Round allotments", constants.StrayRound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRound(tt.filename, tt.text))
		})
	}
}
