package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesh-singh/neet-pg-checker/internal/common"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
	"github.com/avesh-singh/neet-pg-checker/internal/export"
)

type fakeQueries struct {
	eligibility []entity.EligibleCollege
	lastRank    int
	lastFilter  entity.RecordFilter
	colleges    []entity.CollegeInfo
	cutoffs     []entity.CutoffRow
	cutoffErr   error
	search      entity.SearchResults
	err         error
}

func (q *fakeQueries) CheckEligibility(_ context.Context, rank int, filter entity.RecordFilter) ([]entity.EligibleCollege, error) {
	q.lastRank = rank
	q.lastFilter = filter
	return q.eligibility, q.err
}

func (q *fakeQueries) ListColleges(context.Context) ([]entity.CollegeInfo, error) {
	return q.colleges, q.err
}

func (q *fakeQueries) ListCourses(context.Context) ([]entity.CourseCount, error) {
	return nil, q.err
}

func (q *fakeQueries) Statistics(context.Context) (entity.Statistics, error) {
	return entity.Statistics{TotalRecords: 42, ByCategory: map[string]int{"GENERAL": 40}}, q.err
}

func (q *fakeQueries) Cutoffs(_ context.Context, _ string) ([]entity.CutoffRow, error) {
	return q.cutoffs, q.cutoffErr
}

func (q *fakeQueries) SearchRecords(_ context.Context, filter entity.RecordFilter) (entity.SearchResults, error) {
	q.lastFilter = filter
	return q.search, q.err
}

type fakeLister struct {
	records []entity.AdmissionRecord
	exports []entity.CutoffExport
}

func (l *fakeLister) ListRecords(context.Context, entity.RecordFilter) ([]entity.AdmissionRecord, error) {
	return l.records, nil
}

func (l *fakeLister) ListCutoffExports(context.Context) ([]entity.CutoffExport, error) {
	return l.exports, nil
}

func newTestServer(q Queries) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lister := &fakeLister{}
	return NewServer(q, export.NewService(lister, lister, logger), logger)
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestCheckEligibility(t *testing.T) {
	q := &fakeQueries{eligibility: []entity.EligibleCollege{
		{College: "Example College", Course: "M.D. General Medicine", Category: "GENERAL", Round: 1, Year: 2024, CutoffRank: 25579},
	}}
	rr := doGet(t, newTestServer(q), "/api/check-eligibility?rank=30000&category=GENERAL&year=2024")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 30000, q.lastRank)
	assert.Equal(t, "GENERAL", q.lastFilter.Category)
	assert.Equal(t, 2024, q.lastFilter.Year)

	body := decodeBody(t, rr)
	assert.Equal(t, float64(1), body["count"])
	colleges := body["colleges"].([]any)
	first := colleges[0].(map[string]any)
	assert.Equal(t, "Example College", first["college"])
	assert.Equal(t, float64(25579), first["cutoffRank"])
}

func TestCheckEligibilityRequiresRank(t *testing.T) {
	for _, path := range []string{
		"/api/check-eligibility",
		"/api/check-eligibility?rank=abc",
		"/api/check-eligibility?rank=-5",
	} {
		rr := doGet(t, newTestServer(&fakeQueries{}), path)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		body := decodeBody(t, rr)
		assert.Contains(t, body["error"], "rank")
	}
}

func TestCheckEligibilityEmptyResultIsArray(t *testing.T) {
	rr := doGet(t, newTestServer(&fakeQueries{}), "/api/check-eligibility?rank=1")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, []any{}, body["colleges"])
}

func TestStatistics(t *testing.T) {
	rr := doGet(t, newTestServer(&fakeQueries{}), "/api/statistics")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, float64(42), body["totalRecords"])
	assert.Equal(t, map[string]any{"GENERAL": float64(40)}, body["byCategory"])
}

func TestCutoffsUnknownCollege(t *testing.T) {
	q := &fakeQueries{cutoffErr: common.NewAppError("NOT_FOUND", "no records for college", common.ErrNotFound)}
	rr := doGet(t, newTestServer(q), "/api/cutoffs/Nowhere")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCutoffs(t *testing.T) {
	q := &fakeQueries{cutoffs: []entity.CutoffRow{
		{Course: "M.D. General Medicine", Category: "GENERAL", Round: 1, Year: 2024, CutoffRank: 31000, SeatsFilled: 12},
	}}
	rr := doGet(t, newTestServer(q), "/api/cutoffs/Example%20College")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Example College", body["college"])
	row := body["cutoffs"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(31000), row["cutoffRank"])
	assert.Equal(t, float64(12), row["seatsFilled"])
}

func TestSearchPassesFilter(t *testing.T) {
	q := &fakeQueries{search: entity.SearchResults{Total: 0}}
	rr := doGet(t, newTestServer(q), "/api/search?college=Example&course=Medicine&minRank=100&maxRank=5000&limit=10")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "Example", q.lastFilter.College)
	assert.Equal(t, "Medicine", q.lastFilter.Course)
	assert.Equal(t, 100, q.lastFilter.MinRank)
	assert.Equal(t, 5000, q.lastFilter.MaxRank)
	assert.Equal(t, 10, q.lastFilter.Limit)

	body := decodeBody(t, rr)
	assert.Equal(t, []any{}, body["records"])
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	rr := doGet(t, newTestServer(&fakeQueries{err: assert.AnError}), "/api/colleges")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "internal server error", body["error"])
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	rr := doGet(t, newTestServer(&fakeQueries{}), "/api/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestHealthz(t *testing.T) {
	rr := doGet(t, newTestServer(&fakeQueries{}), "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestExportJSONEndpoint(t *testing.T) {
	rr := doGet(t, newTestServer(&fakeQueries{}), "/api/export/records.json")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var records []any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	assert.Empty(t, records)
}

func TestExportCutoffsEndpoint(t *testing.T) {
	rr := doGet(t, newTestServer(&fakeQueries{}), "/api/export/cutoffs.json")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var rows []any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}
