package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avesh-singh/neet-pg-checker/internal/entity"
)

type fakeLister struct {
	records []entity.AdmissionRecord
	filter  entity.RecordFilter
	err     error
}

func (l *fakeLister) ListRecords(_ context.Context, filter entity.RecordFilter) ([]entity.AdmissionRecord, error) {
	l.filter = filter
	return l.records, l.err
}

type fakeCutoffs struct {
	rows []entity.CutoffExport
	err  error
}

func (c *fakeCutoffs) ListCutoffExports(_ context.Context) ([]entity.CutoffExport, error) {
	return c.rows, c.err
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func sampleRecords() []entity.AdmissionRecord {
	return []entity.AdmissionRecord{
		{
			Year:          2024,
			Round:         1,
			Rank:          25579,
			Quota:         strptr("All India"),
			CollegeName:   strptr("Example College"),
			Course:        strptr("M.D. General Medicine"),
			Category:      "GENERAL",
			MarksObtained: intptr(120),
			MaxMarks:      intptr(200),
		},
		{
			Year:        2024,
			Round:       3,
			Rank:        94638,
			Quota:       strptr("All India"),
			CollegeName: strptr("Maulana Azad Medical College, Delhi"),
			Course:      strptr("M.D. - General Medicine"),
			Category:    "GENERAL",
		},
	}
}

func newTestService(lister RecordLister) *Service {
	return newTestServiceWithCutoffs(lister, &fakeCutoffs{})
}

func newTestServiceWithCutoffs(lister RecordLister, cutoffs CutoffLister) *Service {
	return NewService(lister, cutoffs, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExportJSON(t *testing.T) {
	lister := &fakeLister{records: sampleRecords()}
	svc := newTestService(lister)

	out, err := svc.ExportJSON(context.Background(), entity.RecordFilter{Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, 2024, lister.filter.Year)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Example College", decoded[0]["college_name"])
	assert.Equal(t, float64(25579), decoded[0]["rank"])
	assert.Equal(t, float64(120), decoded[0]["marks_obtained"])
	// Optional fields stay absent rather than null.
	_, hasMarks := decoded[1]["marks_obtained"]
	assert.False(t, hasMarks)
}

func TestExportJSONEmptyResultIsArray(t *testing.T) {
	svc := newTestService(&fakeLister{})
	out, err := svc.ExportJSON(context.Background(), entity.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bytes.TrimSpace(out)))
}

func TestExportXLSX(t *testing.T) {
	svc := newTestService(&fakeLister{records: sampleRecords()})

	out, err := svc.ExportXLSX(context.Background(), entity.RecordFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Admissions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Year", rows[0][0])
	assert.Equal(t, "25579", rows[1][2])
	assert.Equal(t, "Example College", rows[1][5])
	assert.Equal(t, "94638", rows[2][2])
}

func TestExportCutoffsJSON(t *testing.T) {
	cutoffs := &fakeCutoffs{rows: []entity.CutoffExport{
		{
			College:  "Maulana Azad Medical College, Delhi",
			Course:   "M.D. - General Medicine",
			Quota:    "All India",
			LastRank: 94638,
			Category: "GENERAL",
			Round:    3,
			Year:     2024,
		},
	}}
	svc := newTestServiceWithCutoffs(&fakeLister{}, cutoffs)

	out, err := svc.ExportCutoffsJSON(context.Background())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Maulana Azad Medical College, Delhi", decoded[0]["college"])
	assert.Equal(t, float64(94638), decoded[0]["lastRank"])
	assert.Equal(t, float64(3), decoded[0]["round"])
}

func TestExportCutoffsJSONEmptyResultIsArray(t *testing.T) {
	svc := newTestServiceWithCutoffs(&fakeLister{}, &fakeCutoffs{})
	out, err := svc.ExportCutoffsJSON(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bytes.TrimSpace(out)))
}

func TestExportJSONListerError(t *testing.T) {
	svc := newTestService(&fakeLister{err: assert.AnError})
	_, err := svc.ExportJSON(context.Background(), entity.RecordFilter{})
	assert.Error(t, err)
}
