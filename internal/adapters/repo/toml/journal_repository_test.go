package toml

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJournalRepo(t *testing.T, path string, maxRecords int) *JournalRepository {
	t.Helper()

	cfg := viper.New()
	cfg.Set(JournalPathKey, path)
	if maxRecords > 0 {
		cfg.Set(JournalMaxRecordsKey, maxRecords)
	}

	repo, err := NewJournalRepository(cfg)
	require.NoError(t, err)
	return repo
}

func TestJournalRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newJournalRepo(t, filepath.Join(t.TempDir(), "journal.toml"), 0)

	launch := domain.LaunchRecord{
		ID:          "rec-1",
		Kind:        domain.RecordKindLaunch,
		Profile:     "dev",
		ProcessName: "RegisterUser",
		EntityID:    "7",
		CaseID:      "5014",
		At:          time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
	}
	complete := domain.LaunchRecord{
		ID:          "rec-2",
		Kind:        domain.RecordKindComplete,
		Profile:     "dev",
		ProcessName: "RegisterUser",
		EntityID:    "7",
		CaseID:      "5014",
		TaskName:    "Step2-Manual",
		At:          time.Date(2026, 10, 1, 10, 5, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Append(context.Background(), launch))
	require.NoError(t, repo.Append(context.Background(), complete))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.LaunchRecord{launch, complete}, records)
}

func TestJournalRepositoryMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo := newJournalRepo(t, filepath.Join(t.TempDir(), "missing", "journal.toml"), 0)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestJournalRepositoryDropsOldestPastLimit(t *testing.T) {
	t.Parallel()

	repo := newJournalRepo(t, filepath.Join(t.TempDir(), "journal.toml"), 3)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Append(context.Background(), domain.LaunchRecord{
			ID:          fmt.Sprintf("rec-%d", i),
			Kind:        domain.RecordKindLaunch,
			ProcessName: "RegisterUser",
		}))
	}

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "rec-3", records[0].ID)
	assert.Equal(t, "rec-5", records[2].ID)
}

func TestJournalRepositoryAppendCanceledContext(t *testing.T) {
	t.Parallel()

	repo := newJournalRepo(t, filepath.Join(t.TempDir(), "journal.toml"), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Append(ctx, domain.LaunchRecord{ID: "rec-1"})
	require.ErrorIs(t, err, context.Canceled)
}
