package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avesh-singh/neet-pg-checker/internal/common"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
	"github.com/avesh-singh/neet-pg-checker/internal/export"
)

// Queries is the read-side behavior the HTTP API depends on.
type Queries interface {
	CheckEligibility(ctx context.Context, rank int, filter entity.RecordFilter) ([]entity.EligibleCollege, error)
	ListColleges(ctx context.Context) ([]entity.CollegeInfo, error)
	ListCourses(ctx context.Context) ([]entity.CourseCount, error)
	Statistics(ctx context.Context) (entity.Statistics, error)
	Cutoffs(ctx context.Context, college string) ([]entity.CutoffRow, error)
	SearchRecords(ctx context.Context, filter entity.RecordFilter) (entity.SearchResults, error)
}

// Server exposes the query API over HTTP.
type Server struct {
	queries  Queries
	exporter *export.Service
	logger   *slog.Logger
}

func NewServer(queries Queries, exporter *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{queries: queries, exporter: exporter, logger: logger}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/check-eligibility", s.handleCheckEligibility)
		r.Get("/colleges", s.handleListColleges)
		r.Get("/courses", s.handleListCourses)
		r.Get("/statistics", s.handleStatistics)
		r.Get("/cutoffs/{college}", s.handleCutoffs)
		r.Get("/search", s.handleSearch)
		r.Get("/export/records.json", s.handleExportJSON)
		r.Get("/export/records.xlsx", s.handleExportXLSX)
		r.Get("/export/cutoffs.json", s.handleExportCutoffs)
	})
	return r
}

func (s *Server) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	rank, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("rank")))
	if err != nil || rank <= 0 {
		s.writeError(w, http.StatusBadRequest, "rank must be a positive integer")
		return
	}
	filter := filterFromQuery(r)

	colleges, err := s.queries.CheckEligibility(r.Context(), rank, filter)
	if err != nil {
		s.serverError(w, r, "check eligibility", err)
		return
	}
	if colleges == nil {
		colleges = []entity.EligibleCollege{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"rank":     rank,
		"count":    len(colleges),
		"colleges": colleges,
	})
}

func (s *Server) handleListColleges(w http.ResponseWriter, r *http.Request) {
	colleges, err := s.queries.ListColleges(r.Context())
	if err != nil {
		s.serverError(w, r, "list colleges", err)
		return
	}
	if colleges == nil {
		colleges = []entity.CollegeInfo{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(colleges),
		"colleges": colleges,
	})
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.queries.ListCourses(r.Context())
	if err != nil {
		s.serverError(w, r, "list courses", err)
		return
	}
	if courses == nil {
		courses = []entity.CourseCount{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(courses),
		"courses": courses,
	})
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.queries.Statistics(r.Context())
	if err != nil {
		s.serverError(w, r, "statistics", err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleCutoffs(w http.ResponseWriter, r *http.Request) {
	college := strings.TrimSpace(chi.URLParam(r, "college"))
	if college == "" {
		s.writeError(w, http.StatusBadRequest, "college is required")
		return
	}

	cutoffs, err := s.queries.Cutoffs(r.Context(), college)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "college not found")
			return
		}
		s.serverError(w, r, "cutoffs", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"college": college,
		"cutoffs": cutoffs,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.queries.SearchRecords(r.Context(), filterFromQuery(r))
	if err != nil {
		s.serverError(w, r, "search", err)
		return
	}
	if results.Records == nil {
		results.Records = []entity.AdmissionRecord{}
	}
	s.writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	out, err := s.exporter.ExportJSON(r.Context(), filterFromQuery(r))
	if err != nil {
		s.serverError(w, r, "export json", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) handleExportCutoffs(w http.ResponseWriter, r *http.Request) {
	out, err := s.exporter.ExportCutoffsJSON(r.Context())
	if err != nil {
		s.serverError(w, r, "export cutoffs", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	out, err := s.exporter.ExportXLSX(r.Context(), filterFromQuery(r))
	if err != nil {
		s.serverError(w, r, "export xlsx", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="admissions.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// filterFromQuery reads the shared record filter parameters. Malformed
// numbers degrade to "any" rather than erroring; only rank, which changes
// eligibility results, is validated strictly by its handler.
func filterFromQuery(r *http.Request) entity.RecordFilter {
	q := r.URL.Query()
	atoi := func(key string) int {
		n, _ := strconv.Atoi(strings.TrimSpace(q.Get(key)))
		return n
	}
	return entity.RecordFilter{
		Year:     atoi("year"),
		Round:    atoi("round"),
		College:  strings.TrimSpace(q.Get("college")),
		Course:   strings.TrimSpace(q.Get("course")),
		Quota:    strings.TrimSpace(q.Get("quota")),
		Category: strings.TrimSpace(q.Get("category")),
		MinRank:  atoi("minRank"),
		MaxRank:  atoi("maxRank"),
		Limit:    atoi("limit"),
		Offset:   atoi("offset"),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op+" failed", "path", r.URL.Path, "error", err)
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
