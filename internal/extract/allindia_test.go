package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMultiRoundParser() MultiRoundParser {
	return MultiRoundParser{Profile: DefaultProfiles().MultiRound, Year: 2024}
}

func TestMultiRoundParserRoundThreeOnly(t *testing.T) {
	// Rounds 1 and 2 hold "-" placeholders; only the round 3 window,
	// starting at cell 9, carries an allotment.
	row := []string{
		"94638",
		"-", "-", "-", "-",
		"-", "-", "-", "-",
		"AI", "Maulana Azad Medical College, Delhi", "M.D. - General Medicine", "GENERAL",
		"Reported", "",
	}
	records := newMultiRoundParser().ParseRow(row)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 3, rec.Round)
	assert.Equal(t, 94638, rec.Rank)
	assert.Equal(t, "All India", rec.Quota)
	assert.Equal(t, "Maulana Azad Medical College, Delhi", rec.CollegeName)
	assert.Equal(t, "M.D. - General Medicine", rec.Course)
	assert.Equal(t, "GENERAL", rec.Category)
	assert.Equal(t, 2024, rec.Year)
}

func TestMultiRoundParserAllThreeRounds(t *testing.T) {
	row := []string{
		"1024",
		"AI", "Example Medical Institute A", "M.D. Medicine", "OBC",
		"DU", "Example Medical Institute B", "M.S. Surgery", "",
		"IP", "Example Medical Institute C", "Diploma in Anaesthesia", "EWS",
		"Reported",
	}
	records := newMultiRoundParser().ParseRow(row)
	require.Len(t, records, 3)

	assert.Equal(t, 1, records[0].Round)
	assert.Equal(t, "All India", records[0].Quota)
	assert.Equal(t, "OBC", records[0].Category)

	assert.Equal(t, 2, records[1].Round)
	assert.Equal(t, "Delhi University", records[1].Quota)
	// No category cell in the window: defaults to GENERAL.
	assert.Equal(t, "GENERAL", records[1].Category)

	assert.Equal(t, 3, records[2].Round)
	assert.Equal(t, "IP University", records[2].Quota)
	assert.Equal(t, "Example Medical Institute C", records[2].CollegeName)
	assert.Equal(t, "Diploma in Anaesthesia", records[2].Course)

	for _, rec := range records {
		assert.Equal(t, 1024, rec.Rank)
	}
}

func TestMultiRoundParserRejectsNonNumericRank(t *testing.T) {
	row := []string{
		"Rank", "AI", "Example Medical Institute A", "M.D. Medicine", "GENERAL",
	}
	assert.Nil(t, newMultiRoundParser().ParseRow(row))
}

func TestMultiRoundParserRequiresInstituteAndCourse(t *testing.T) {
	// Quota token present but the window holds no institute-length cell:
	// the round yields nothing rather than a half-empty record.
	row := []string{
		"2048",
		"AI", "short", "-", "-",
		"-", "-", "-", "-",
		"-", "-", "-", "-", "-", "-",
	}
	assert.Empty(t, newMultiRoundParser().ParseRow(row))

	// Institute without a recognizable course cell is dropped too.
	row = []string{
		"2048",
		"AI", "Example Medical Institute A", "-", "-",
		"-", "-", "-", "-",
		"-", "-", "-", "-", "-", "-",
	}
	assert.Empty(t, newMultiRoundParser().ParseRow(row))
}

func TestMultiRoundParserShortRow(t *testing.T) {
	assert.Nil(t, newMultiRoundParser().ParseRow([]string{"1024", "AI"}))
}

func newSingleRoundParser() SingleRoundParser {
	return SingleRoundParser{Profile: DefaultProfiles().SingleRound, Year: 2024, Round: 2}
}

func TestSingleRoundParserFullRow(t *testing.T) {
	row := []string{"102", "AI", "Example Medical Institute", "M.D. Radio-Diagnosis", "OBC", "Reported"}
	rec, ok := newSingleRoundParser().ParseRow(row)
	require.True(t, ok)

	assert.Equal(t, 102, rec.Rank)
	assert.Equal(t, 2, rec.Round)
	assert.Equal(t, "All India", rec.Quota)
	assert.Equal(t, "Example Medical Institute", rec.CollegeName)
	assert.Equal(t, "M.D. Radio-Diagnosis", rec.Course)
	assert.Equal(t, "OBC", rec.Category)
	assert.Equal(t, "Reported", rec.Status)
}

func TestSingleRoundParserDashQuotaSkipped(t *testing.T) {
	row := []string{"102", "-", "Example Medical Institute", "M.D. Radio-Diagnosis", "SC", "Reported"}
	rec, ok := newSingleRoundParser().ParseRow(row)
	require.True(t, ok)
	assert.Empty(t, rec.Quota)
	assert.Equal(t, "SC", rec.Category)
}

func TestSingleRoundParserMissingCourse(t *testing.T) {
	row := []string{"102", "AI", "Example Medical Institute", "", "OBC", "Reported"}
	_, ok := newSingleRoundParser().ParseRow(row)
	assert.False(t, ok)
}

func TestSingleRoundParserRejectsNonNumericRank(t *testing.T) {
	row := []string{"AIR 102", "AI", "Example Medical Institute", "M.D. Radio-Diagnosis", "OBC"}
	_, ok := newSingleRoundParser().ParseRow(row)
	assert.False(t, ok)
}
