package extract

import (
	"regexp"
	"strconv"

	"github.com/avesh-singh/neet-pg-checker/constants"
)

var (
	// Ranks print as 4-6 digit runs, sometimes inside longer cells like
	// "Rank 25579". Shorter runs are serial numbers, not ranks.
	reRank = regexp.MustCompile(`(\d{4,6})`)
	// Marks print as "obtained/maximum", e.g. "120/200".
	reMarks = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)
)

// StateParser extracts records from the state quota allotment table, which
// prints one admission per row at fixed positions.
type StateParser struct {
	Profile StateProfile
	Year    int
	Round   int
}

// ParseRow turns one table row into at most one record. A row with no
// recoverable rank yields nothing.
func (p StateParser) ParseRow(row []string) (Record, bool) {
	if len(row) < p.Profile.MinCells {
		return Record{}, false
	}

	rank, ok := parseRankCell(cell(row, p.Profile.RankCol))
	if !ok {
		return Record{}, false
	}

	rec := Record{
		Year:                  p.Year,
		Round:                 p.Round,
		Rank:                  rank,
		State:                 cell(row, p.Profile.StateCol),
		CollegeName:           cell(row, p.Profile.CollegeCol),
		Course:                cell(row, p.Profile.CourseCol),
		StudentName:           cell(row, p.Profile.StudentCol),
		Gender:                cell(row, p.Profile.GenderCol),
		PhysicallyHandicapped: cell(row, p.Profile.DisabilityCol),
		ExamRoll:              cell(row, p.Profile.RollCol),
		Stipend:               cell(row, p.Profile.StipendCol),
		RegistrationNo:        cell(row, p.Profile.RegistrationCol),
		Council:               cell(row, p.Profile.CouncilCol),
		DateOfAdmission:       cell(row, p.Profile.AdmissionDateCol),
	}
	if quota := cell(row, p.Profile.QuotaCol); quota != "" {
		rec.Quota = constants.NormalizeQuota(quota)
	}
	rec.Category = constants.NormalizeCategory(cell(row, p.Profile.CategoryCol))

	// Marks are best-effort: a malformed marks cell never blocks the row.
	if m := reMarks.FindStringSubmatch(cell(row, p.Profile.MarksCol)); m != nil {
		if obtained, err := strconv.Atoi(m[1]); err == nil {
			if max, err := strconv.Atoi(m[2]); err == nil {
				rec.MarksObtained = &obtained
				rec.MaxMarks = &max
			}
		}
	}
	return rec, true
}

func parseRankCell(s string) (int, bool) {
	m := reRank.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	rank, err := strconv.Atoi(m[1])
	if err != nil || rank <= 0 {
		return 0, false
	}
	return rank, true
}
