package verify

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/internal/common"
	"github.com/avesh-singh/neet-pg-checker/internal/extract"
)

// RecordLocator is the persistence behavior the sampler depends on.
type RecordLocator interface {
	// FindRecordID resolves a persisted record by the fields that survive
	// every layout, most recently inserted first.
	FindRecordID(ctx context.Context, rank int, collegeName, course string) (uuid.UUID, bool, error)
	// CreateVerification stages one sampled record for manual review.
	CreateVerification(ctx context.Context, recordID, fileID uuid.UUID, pageNumber int) error
	// SetSampleSize stamps the document with its sample size and marks
	// its review pending.
	SetSampleSize(ctx context.Context, fileID uuid.UUID, size int) error
}

// Sampler draws a deterministic systematic sample from a document's
// candidate stream so a reviewer can spot-check extraction quality page
// by page.
type Sampler struct {
	extractor *extract.Extractor
	locator   RecordLocator
	logger    *slog.Logger
}

func NewSampler(extractor *extract.Extractor, locator RecordLocator, logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sampler{extractor: extractor, locator: locator, logger: logger}
}

// SampleDocument re-streams the document and stages every k-th candidate
// for review, where k = round(1/rate). The stride starts at the first
// candidate, so a rate of 0.1 over 1000 records stages exactly 100.
func (s *Sampler) SampleDocument(ctx context.Context, path string, layout constants.Layout, round int, fileID uuid.UUID, rate float64) (int, error) {
	if err := common.NewValidator().
		Field("sample_rate", rate, common.SampleRate).
		Error(); err != nil {
		return 0, err
	}
	k := int(math.Round(1 / rate))
	if k < 1 {
		k = 1
	}

	stream, err := s.extractor.OpenStream(ctx, path, layout, round)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			s.logger.Warn("close sample stream", "path", path, "error", cerr)
		}
	}()

	sampled := 0
	missing := 0
	for i := 0; ; i++ {
		cand, ok := stream.Next()
		if !ok {
			break
		}
		if i%k != 0 {
			continue
		}

		recordID, found, err := s.locator.FindRecordID(ctx, cand.Record.Rank, cand.Record.CollegeName, cand.Record.Course)
		if err != nil {
			return sampled, fmt.Errorf("locate record rank=%d: %w", cand.Record.Rank, err)
		}
		if !found {
			// The candidate was extracted but never landed, e.g. it was
			// a duplicate of a record from another document.
			missing++
			continue
		}
		if err := s.locator.CreateVerification(ctx, recordID, fileID, cand.Page); err != nil {
			return sampled, fmt.Errorf("stage verification rank=%d: %w", cand.Record.Rank, err)
		}
		sampled++
	}

	if err := s.locator.SetSampleSize(ctx, fileID, sampled); err != nil {
		return sampled, fmt.Errorf("record sample size: %w", err)
	}
	s.logger.Info("verification sample staged",
		"path", path,
		"stride", k,
		"sampled", sampled,
		"missing", missing,
	)
	return sampled, nil
}
