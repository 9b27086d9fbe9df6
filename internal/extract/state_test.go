package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateRow() []string {
	return []string{
		"Delhi",                  // state
		"Example College",        // college
		"M.D. General Medicine",  // course
		"Anjali Sharma",          // candidate name
		"F",                      // gender
		"01-01-2000",             // dob
		"AI",                     // admitted by (quota)
		"GN",                     // sub category
		"No",                     // physically handicapped
		"ROLL1",                  // exam roll
		"Rank 25579",             // exam rank
		"120/200",                // marks obtained / maximum
		"Dr. R. Mehta",           // guide
		"50000",                  // stipend
		"REG-9",                  // registration
		"Delhi Medical Council",  // council
		"15-09-2024",             // date of admission
	}
}

func newStateParser() StateParser {
	return StateParser{Profile: DefaultProfiles().State, Year: 2024, Round: 1}
}

func TestStateParserFullRow(t *testing.T) {
	rec, ok := newStateParser().ParseRow(stateRow())
	require.True(t, ok)

	assert.Equal(t, 25579, rec.Rank)
	assert.Equal(t, "All India", rec.Quota)
	assert.Equal(t, "GENERAL", rec.Category)
	assert.Equal(t, "Example College", rec.CollegeName)
	assert.Equal(t, "M.D. General Medicine", rec.Course)
	assert.Equal(t, "Delhi", rec.State)
	assert.Equal(t, "Anjali Sharma", rec.StudentName)
	assert.Equal(t, "F", rec.Gender)
	assert.Equal(t, "ROLL1", rec.ExamRoll)
	require.NotNil(t, rec.MarksObtained)
	require.NotNil(t, rec.MaxMarks)
	assert.Equal(t, 120, *rec.MarksObtained)
	assert.Equal(t, 200, *rec.MaxMarks)
	assert.Equal(t, 2024, rec.Year)
	assert.Equal(t, 1, rec.Round)
}

func TestStateParserRankDigitRun(t *testing.T) {
	parser := newStateParser()
	tests := []struct {
		name     string
		rankCell string
		wantRank int
		wantOK   bool
	}{
		{"bare rank", "25579", 25579, true},
		{"labelled rank", "AIR 94638", 94638, true},
		{"minimum width", "1234", 1234, true},
		{"six digits", "123456", 123456, true},
		{"serial-sized number rejected", "579", 0, false},
		{"no digits", "N/A", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := stateRow()
			row[10] = tt.rankCell
			rec, ok := parser.ParseRow(row)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRank, rec.Rank)
			}
		})
	}
}

func TestStateParserMalformedMarksKeepsRow(t *testing.T) {
	row := stateRow()
	row[11] = "absent"
	rec, ok := newStateParser().ParseRow(row)
	require.True(t, ok)
	assert.Nil(t, rec.MarksObtained)
	assert.Nil(t, rec.MaxMarks)
	assert.Equal(t, 25579, rec.Rank)
	assert.Equal(t, "Example College", rec.CollegeName)
}

func TestStateParserMarksWithSpaces(t *testing.T) {
	row := stateRow()
	row[11] = "987 / 1200"
	rec, ok := newStateParser().ParseRow(row)
	require.True(t, ok)
	require.NotNil(t, rec.MarksObtained)
	assert.Equal(t, 987, *rec.MarksObtained)
	assert.Equal(t, 1200, *rec.MaxMarks)
}

func TestStateParserBlankCategoryDefaultsToGeneral(t *testing.T) {
	row := stateRow()
	row[7] = ""
	rec, ok := newStateParser().ParseRow(row)
	require.True(t, ok)
	assert.Equal(t, "GENERAL", rec.Category)
}

func TestStateParserUnknownQuotaPassesThrough(t *testing.T) {
	row := stateRow()
	row[6] = "Management Quota"
	rec, ok := newStateParser().ParseRow(row)
	require.True(t, ok)
	assert.Equal(t, "Management Quota", rec.Quota)
}

func TestStateParserShortRow(t *testing.T) {
	_, ok := newStateParser().ParseRow([]string{"Delhi", "Example College", "M.D."})
	assert.False(t, ok)
}

func TestStateParserRowWithoutTrailingColumns(t *testing.T) {
	// 12 cells is enough for rank and marks; the registry columns are
	// simply absent.
	rec, ok := newStateParser().ParseRow(stateRow()[:12])
	require.True(t, ok)
	assert.Equal(t, 25579, rec.Rank)
	assert.Empty(t, rec.RegistrationNo)
	assert.Empty(t, rec.Council)
	assert.Empty(t, rec.DateOfAdmission)
}
