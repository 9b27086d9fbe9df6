package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesh-singh/neet-pg-checker/gen/ent"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
)

func testClient(t *testing.T) *ent.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := OpenSQLite("file:"+t.Name()+"?mode=memory", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, Migrate(context.Background(), client, logger))
	return client
}

func seedRecord(t *testing.T, client *ent.Client, rank int, college, course string) {
	t.Helper()
	_, err := client.AdmissionRecord.Create().
		SetYear(2024).
		SetRound(1).
		SetRank(rank).
		SetCategory("GENERAL").
		SetQuota("AI").
		SetCollegeName(college).
		SetCourse(course).
		Save(context.Background())
	require.NoError(t, err)
}

func TestCheckEligibilityAppliesLimit(t *testing.T) {
	client := testClient(t)
	for i := 1; i <= 5; i++ {
		seedRecord(t, client, 1000*i, fmt.Sprintf("College %d", i), "M.D. General Medicine")
	}
	repo := NewQueryRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := repo.CheckEligibility(context.Background(), 99999, entity.RecordFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1000, out[0].CutoffRank)
	assert.Equal(t, 2000, out[1].CutoffRank)
}

func TestCheckEligibilityDefaultLimit(t *testing.T) {
	client := testClient(t)
	for i := 1; i <= 5; i++ {
		seedRecord(t, client, 1000*i, fmt.Sprintf("College %d", i), "M.D. General Medicine")
	}
	repo := NewQueryRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := repo.CheckEligibility(context.Background(), 99999, entity.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 5)
}

func TestCutoffsReportBestRank(t *testing.T) {
	client := testClient(t)
	for _, rank := range []int{1500, 500, 2000} {
		seedRecord(t, client, rank, "Example Medical College", "M.D. General Medicine")
	}
	repo := NewQueryRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := repo.Cutoffs(context.Background(), "Example Medical College")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 500, out[0].CutoffRank)
	assert.Equal(t, 3, out[0].SeatsFilled)
}
