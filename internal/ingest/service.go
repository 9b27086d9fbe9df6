package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/avesh-singh/neet-pg-checker/constants"
)

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Skipped   uint32
	Empty     uint32
	Failed    uint32
}

// Verifier creates verification samples for a freshly ingested document.
type Verifier interface {
	SampleDocument(ctx context.Context, path string, layout constants.Layout, round int, fileID uuid.UUID, rate float64) (int, error)
}

// Service orchestrates document ingest: discovery, persistence and
// optional verification sampling. A nil verifier or a zero sample rate
// disables sampling.
type Service struct {
	Persister  *BatchPersister
	Verifier   Verifier
	SampleRate float64
	Logger     *slog.Logger
}

func NewService(persister *BatchPersister, verifier Verifier, sampleRate float64, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Persister:  persister,
		Verifier:   verifier,
		SampleRate: sampleRate,
		Logger:     logger,
	}
}

// ProcessFile ingests a single document and, when enabled, samples it for
// verification.
func (s *Service) ProcessFile(ctx context.Context, path string, layoutOverride constants.Layout) (FileResult, error) {
	result, err := s.Persister.IngestDocument(ctx, path, layoutOverride)
	if err != nil {
		return result, err
	}
	if result.Skipped || result.Inserted == 0 {
		return result, nil
	}

	if s.Verifier != nil && s.SampleRate > 0 {
		sampled, serr := s.Verifier.SampleDocument(ctx, path, result.Layout, result.Round, result.FileID, s.SampleRate)
		if serr != nil {
			// Sampling failure never undoes a successful ingest.
			s.Logger.Error("verification sampling failed",
				"filename", result.Filename,
				"error", serr,
			)
		} else {
			s.Logger.Info("verification sample created",
				"filename", result.Filename,
				"sampled", sampled,
			)
		}
	}
	return result, nil
}

// ProcessDirectory walks root, skips hidden entries, and ingests every PDF
// it finds. One bad document never aborts the run; its error lands in the
// per-file result instead. Returns per-file results + aggregate stats.
func (s *Service) ProcessDirectory(ctx context.Context, root string, layoutOverride constants.Layout) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Filename: filepath.Base(path), Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := s.ProcessFile(ctx, path, layoutOverride)
		if err != nil {
			r.Err = err.Error()
			results = append(results, r)
			stats.Failed++
			s.Logger.Error("document ingest failed", "path", path, "error", err)
			return nil
		}

		results = append(results, r)
		switch {
		case r.Skipped:
			stats.Skipped++
		case r.Inserted == 0:
			stats.Empty++
		default:
			stats.Succeeded++
		}
		return nil
	})

	if err != nil {
		return results, stats, err
	}
	s.Logger.Info("directory ingest finished",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"skipped", stats.Skipped,
		"empty", stats.Empty,
		"failed", stats.Failed,
	)
	return results, stats, nil
}
