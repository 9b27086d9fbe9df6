package extract

import (
	"strconv"

	"github.com/avesh-singh/neet-pg-checker/constants"
)

// MultiRoundParser extracts records from the all-India table that packs up
// to three counselling rounds into disjoint column windows of one row.
type MultiRoundParser struct {
	Profile MultiRoundProfile
	Year    int
}

// ParseRow yields zero to three records, one per round window that holds a
// real allotment. All of them share the rank from the rank column.
func (p MultiRoundParser) ParseRow(row []string) []Record {
	if len(row) < p.Profile.MinCells {
		return nil
	}

	rankCell := cell(row, p.Profile.RankCol)
	rank, err := strconv.Atoi(rankCell)
	if err != nil || rank <= 0 {
		return nil
	}

	isQuota := inSet(p.Profile.QuotaTokens)
	isInstitute := longerThan(p.Profile.InstituteMinLen)
	isCourse := containsAny(p.Profile.CourseMarkers)
	isCategory := inSet(p.Profile.CategoryTokens)

	var records []Record
	for _, w := range p.Profile.Windows {
		quota, quotaIdx, ok := scanForward(row, w.Start, w.End, isQuota)
		if !ok {
			// "-" placeholders and empty windows mean the candidate did
			// not hold a seat in this round.
			continue
		}

		rec := Record{
			Year:     p.Year,
			Round:    w.Round,
			Rank:     rank,
			Quota:    constants.NormalizeQuota(quota),
			Category: string(constants.CategoryGeneral),
		}
		if institute, _, ok := scanForward(row, quotaIdx+1, w.End, isInstitute); ok {
			rec.CollegeName = institute
		}
		if course, _, ok := scanForward(row, quotaIdx+1, w.End, isCourse); ok {
			rec.Course = course
		}
		if category, _, ok := scanForward(row, quotaIdx+1, w.End, isCategory); ok {
			rec.Category = constants.NormalizeCategory(category)
		}

		// All-India rows are only useful when both the institute and the
		// course survived extraction.
		if rec.CollegeName == "" || rec.Course == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// SingleRoundParser extracts records from the one-round all-India table at
// fixed positions.
type SingleRoundParser struct {
	Profile SingleRoundProfile
	Year    int
	Round   int
}

// ParseRow turns one table row into at most one record. Rank, college and
// course must all be present for the record to count.
func (p SingleRoundParser) ParseRow(row []string) (Record, bool) {
	if len(row) < p.Profile.MinCells {
		return Record{}, false
	}

	rank, err := strconv.Atoi(cell(row, p.Profile.RankCol))
	if err != nil || rank <= 0 {
		return Record{}, false
	}

	rec := Record{
		Year:        p.Year,
		Round:       p.Round,
		Rank:        rank,
		CollegeName: cell(row, p.Profile.CollegeCol),
		Course:      cell(row, p.Profile.CourseCol),
		Status:      cell(row, p.Profile.StatusCol),
	}
	if quota := cell(row, p.Profile.QuotaCol); quota != "" && quota != "-" {
		rec.Quota = constants.NormalizeQuota(quota)
	}
	rec.Category = constants.NormalizeCategory(cell(row, p.Profile.CategoryCol))

	if rec.CollegeName == "" || rec.Course == "" {
		return Record{}, false
	}
	return rec, true
}
