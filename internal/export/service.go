package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/avesh-singh/neet-pg-checker/internal/entity"
)

// RecordLister is the behavior the record exports depend on.
type RecordLister interface {
	ListRecords(ctx context.Context, filter entity.RecordFilter) ([]entity.AdmissionRecord, error)
}

// CutoffLister supplies the grouped cutoff rows for the web export.
type CutoffLister interface {
	ListCutoffExports(ctx context.Context) ([]entity.CutoffExport, error)
}

// Service is a tiny façade over the record store that produces JSON and
// XLSX bytes for exports.
type Service struct {
	lister  RecordLister
	cutoffs CutoffLister
	logger  *slog.Logger
}

func NewService(lister RecordLister, cutoffs CutoffLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{lister: lister, cutoffs: cutoffs, logger: logger}
}

// ExportJSON returns the matching admission records as a JSON array.
func (s *Service) ExportJSON(ctx context.Context, filter entity.RecordFilter) ([]byte, error) {
	start := time.Now()

	recs, err := s.lister.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	if recs == nil {
		recs = []entity.AdmissionRecord{}
	}

	out, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json write: %w", err)
	}

	s.logger.Info("export.json.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ExportCutoffsJSON returns the grouped cutoff rows as a JSON array, the
// shape the public results page consumes.
func (s *Service) ExportCutoffsJSON(ctx context.Context) ([]byte, error) {
	start := time.Now()

	rows, err := s.cutoffs.ListCutoffExports(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cutoffs: %w", err)
	}
	if rows == nil {
		rows = []entity.CutoffExport{}
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json write: %w", err)
	}

	s.logger.Info("export.cutoffs.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ExportXLSX returns an XLSX workbook (as bytes) of the matching
// admission records.
func (s *Service) ExportXLSX(ctx context.Context, filter entity.RecordFilter) ([]byte, error) {
	start := time.Now()

	recs, err := s.lister.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Admissions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Year",
		"Round",
		"Rank",
		"Quota",
		"State",
		"College",
		"Course",
		"Category",
		"Marks",
		"Max Marks",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Year)
		write(2, r.Round)
		write(3, r.Rank)
		write(4, str(r.Quota))
		write(5, str(r.State))
		write(6, str(r.CollegeName))
		write(7, str(r.Course))
		write(8, r.Category)
		if r.MarksObtained != nil {
			write(9, *r.MarksObtained)
		}
		if r.MaxMarks != nil {
			write(10, *r.MaxMarks)
		}
		write(11, str(r.Status))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "C", 10)
	_ = f.SetColWidth(sheet, "D", "E", 18)
	_ = f.SetColWidth(sheet, "F", "F", 48)
	_ = f.SetColWidth(sheet, "G", "G", 36)
	_ = f.SetColWidth(sheet, "H", "K", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
