package repository

import (
	"context"
	"log/slog"
	"sort"

	"github.com/avesh-singh/neet-pg-checker/gen/ent"
	rec "github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/internal/common"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
)

// QueryRepository answers the read-side questions the HTTP API asks.
type QueryRepository interface {
	CheckEligibility(ctx context.Context, rank int, filter entity.RecordFilter) ([]entity.EligibleCollege, error)
	ListColleges(ctx context.Context) ([]entity.CollegeInfo, error)
	ListCourses(ctx context.Context) ([]entity.CourseCount, error)
	Statistics(ctx context.Context) (entity.Statistics, error)
	Cutoffs(ctx context.Context, college string) ([]entity.CutoffRow, error)
	SearchRecords(ctx context.Context, filter entity.RecordFilter) (entity.SearchResults, error)
	ListCutoffExports(ctx context.Context) ([]entity.CutoffExport, error)
}

type queryRepository struct {
	client  *ent.Client
	records RecordRepository
	logger  *slog.Logger
}

func NewQueryRepository(client *ent.Client, logger *slog.Logger) QueryRepository {
	return &queryRepository{
		client:  client,
		records: NewRecordRepository(client, logger),
		logger:  logger,
	}
}

// CheckEligibility lists the (college, course) groups where a candidate
// with an equal or better rank than the given one was admitted. The
// cutoff is the best rank seen in the group, so results sort from most to
// least competitive.
func (r *queryRepository) CheckEligibility(ctx context.Context, rank int, filter entity.RecordFilter) ([]entity.EligibleCollege, error) {
	var rows []struct {
		CollegeName string  `json:"college_name"`
		Course      string  `json:"course"`
		Quota       *string `json:"quota"`
		Category    string  `json:"category"`
		Round       int     `json:"round"`
		Year        int     `json:"year"`
		Cutoff      int     `json:"cutoff"`
	}

	preds := filterPredicates(filter)
	preds = append(preds, rec.RankGTE(rank), rec.CollegeNameNotNil(), rec.CourseNotNil())
	err := r.client.AdmissionRecord.Query().
		Where(preds...).
		GroupBy(rec.FieldCollegeName, rec.FieldCourse, rec.FieldQuota, rec.FieldCategory, rec.FieldRound, rec.FieldYear).
		Aggregate(ent.As(ent.Min(rec.FieldRank), "cutoff")).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("eligibility query failed", "rank", rank, "error", err)
		return nil, err
	}

	out := make([]entity.EligibleCollege, len(rows))
	for i, row := range rows {
		out[i] = entity.EligibleCollege{
			College:    row.CollegeName,
			Course:     row.Course,
			Quota:      strOrEmpty(row.Quota),
			Category:   row.Category,
			Round:      row.Round,
			Year:       row.Year,
			CutoffRank: row.Cutoff,
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CutoffRank < out[j].CutoffRank })
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *queryRepository) ListColleges(ctx context.Context) ([]entity.CollegeInfo, error) {
	var rows []struct {
		CollegeName string `json:"college_name"`
		Course      string `json:"course"`
		Count       int    `json:"count"`
	}
	err := r.client.AdmissionRecord.Query().
		Where(rec.CollegeNameNotNil()).
		GroupBy(rec.FieldCollegeName, rec.FieldCourse).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("college query failed", "error", err)
		return nil, err
	}

	byCollege := map[string]*entity.CollegeInfo{}
	for _, row := range rows {
		info, ok := byCollege[row.CollegeName]
		if !ok {
			info = &entity.CollegeInfo{Name: row.CollegeName}
			byCollege[row.CollegeName] = info
		}
		info.CourseCount++
		info.SeatsFilled += row.Count
	}

	out := make([]entity.CollegeInfo, 0, len(byCollege))
	for _, info := range byCollege {
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *queryRepository) ListCourses(ctx context.Context) ([]entity.CourseCount, error) {
	var rows []struct {
		Course string `json:"course"`
		Count  int    `json:"count"`
	}
	err := r.client.AdmissionRecord.Query().
		Where(rec.CourseNotNil()).
		GroupBy(rec.FieldCourse).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("course query failed", "error", err)
		return nil, err
	}

	out := make([]entity.CourseCount, len(rows))
	for i, row := range rows {
		out[i] = entity.CourseCount{Course: row.Course, SeatsFilled: row.Count}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Course < out[j].Course })
	return out, nil
}

func (r *queryRepository) Statistics(ctx context.Context) (entity.Statistics, error) {
	var stats entity.Statistics

	total, err := r.client.AdmissionRecord.Query().Count(ctx)
	if err != nil {
		return stats, err
	}
	stats.TotalRecords = total

	colleges, err := r.client.AdmissionRecord.Query().
		Where(rec.CollegeNameNotNil()).
		Unique(true).
		Select(rec.FieldCollegeName).
		Strings(ctx)
	if err != nil {
		return stats, err
	}
	stats.TotalColleges = len(colleges)

	courses, err := r.client.AdmissionRecord.Query().
		Where(rec.CourseNotNil()).
		Unique(true).
		Select(rec.FieldCourse).
		Strings(ctx)
	if err != nil {
		return stats, err
	}
	stats.TotalCourses = len(courses)

	years, err := r.client.AdmissionRecord.Query().
		Unique(true).
		Select(rec.FieldYear).
		Ints(ctx)
	if err != nil {
		return stats, err
	}
	sort.Ints(years)
	stats.Years = years

	rounds, err := r.client.AdmissionRecord.Query().
		Unique(true).
		Select(rec.FieldRound).
		Ints(ctx)
	if err != nil {
		return stats, err
	}
	sort.Ints(rounds)
	stats.Rounds = rounds

	var byCategory []struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}
	err = r.client.AdmissionRecord.Query().
		GroupBy(rec.FieldCategory).
		Aggregate(ent.Count()).
		Scan(ctx, &byCategory)
	if err != nil {
		return stats, err
	}
	stats.ByCategory = make(map[string]int, len(byCategory))
	for _, row := range byCategory {
		stats.ByCategory[row.Category] = row.Count
	}
	return stats, nil
}

func (r *queryRepository) Cutoffs(ctx context.Context, college string) ([]entity.CutoffRow, error) {
	var rows []struct {
		Course   string  `json:"course"`
		Quota    *string `json:"quota"`
		Category string  `json:"category"`
		Round    int     `json:"round"`
		Year     int     `json:"year"`
		Cutoff   int     `json:"cutoff"`
		Count    int     `json:"count"`
	}
	err := r.client.AdmissionRecord.Query().
		Where(rec.CollegeNameEqualFold(college), rec.CourseNotNil()).
		GroupBy(rec.FieldCourse, rec.FieldQuota, rec.FieldCategory, rec.FieldRound, rec.FieldYear).
		Aggregate(ent.As(ent.Min(rec.FieldRank), "cutoff"), ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("cutoff query failed", "college", college, "error", err)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.NewAppError("NOT_FOUND", "no records for college", common.ErrNotFound)
	}

	out := make([]entity.CutoffRow, len(rows))
	for i, row := range rows {
		out[i] = entity.CutoffRow{
			Course:      row.Course,
			Quota:       strOrEmpty(row.Quota),
			Category:    row.Category,
			Round:       row.Round,
			Year:        row.Year,
			CutoffRank:  row.Cutoff,
			SeatsFilled: row.Count,
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Course != out[j].Course {
			return out[i].Course < out[j].Course
		}
		return out[i].Round < out[j].Round
	})
	return out, nil
}

func (r *queryRepository) SearchRecords(ctx context.Context, filter entity.RecordFilter) (entity.SearchResults, error) {
	total, err := r.client.AdmissionRecord.Query().
		Where(filterPredicates(filter)...).
		Count(ctx)
	if err != nil {
		r.logger.Error("search count failed", "error", err)
		return entity.SearchResults{}, err
	}

	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}
	records, err := r.records.ListRecords(ctx, filter)
	if err != nil {
		return entity.SearchResults{}, err
	}
	return entity.SearchResults{Total: total, Records: records}, nil
}

// ListCutoffExports produces the grouped cutoff rows for the web-facing
// JSON export, ordered from most to least competitive group.
func (r *queryRepository) ListCutoffExports(ctx context.Context) ([]entity.CutoffExport, error) {
	var rows []struct {
		CollegeName string  `json:"college_name"`
		Course      string  `json:"course"`
		Quota       *string `json:"quota"`
		Category    string  `json:"category"`
		Round       int     `json:"round"`
		Year        int     `json:"year"`
		Cutoff      int     `json:"cutoff"`
	}
	err := r.client.AdmissionRecord.Query().
		Where(rec.CollegeNameNotNil(), rec.CourseNotNil()).
		GroupBy(rec.FieldCollegeName, rec.FieldCourse, rec.FieldQuota, rec.FieldCategory, rec.FieldRound, rec.FieldYear).
		Aggregate(ent.As(ent.Min(rec.FieldRank), "cutoff")).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("cutoff export query failed", "error", err)
		return nil, err
	}

	out := make([]entity.CutoffExport, len(rows))
	for i, row := range rows {
		out[i] = entity.CutoffExport{
			College:  row.CollegeName,
			Course:   row.Course,
			Quota:    strOrEmpty(row.Quota),
			LastRank: row.Cutoff,
			Category: row.Category,
			Round:    row.Round,
			Year:     row.Year,
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastRank < out[j].LastRank })
	return out, nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
