package infrastructure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/mediagrab/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteHistoryRepository {
	t.Helper()
	repo, err := NewSQLiteHistoryRepository(":memory:")
	require.NoError(t, err)
	return repo
}

func TestSQLiteHistoryRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepository(t)

	record := domain.NewFetchRecord("https://example.com/watch?v=abc", domain.KindVideo)
	require.NoError(t, repo.Create(record))

	found, err := repo.FindByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.URL, found.URL)
	assert.Equal(t, domain.KindVideo, found.Kind)
	assert.Equal(t, domain.StatusProcessing, found.Status)
}

func TestSQLiteHistoryRepository_UpdateLifecycle(t *testing.T) {
	repo := newTestRepository(t)

	record := domain.NewFetchRecord("https://example.com/a", domain.KindAudio)
	require.NoError(t, repo.Create(record))

	record.MarkCompleted("clip.mp3")
	require.NoError(t, repo.Update(record))

	found, err := repo.FindByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, found.Status)
	assert.Equal(t, "clip.mp3", found.FileName)
	assert.NotNil(t, found.CompletedAt)
}

func TestSQLiteHistoryRepository_MarkFailed(t *testing.T) {
	repo := newTestRepository(t)

	record := domain.NewFetchRecord("https://example.com/a", domain.KindVideo)
	require.NoError(t, repo.Create(record))

	record.MarkFailed(errors.New("dead link"))
	require.NoError(t, repo.Update(record))

	failed, err := repo.FindByStatus(domain.StatusFailed)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "dead link", failed[0].ErrorMessage)
}

func TestSQLiteHistoryRepository_FindRecentLimit(t *testing.T) {
	repo := newTestRepository(t)

	for i := 0; i < 5; i++ {
		record := domain.NewFetchRecord("https://example.com/a", domain.KindVideo)
		require.NoError(t, repo.Create(record))
	}

	records, err := repo.FindRecent(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestSQLiteHistoryRepository_Stats(t *testing.T) {
	repo := newTestRepository(t)

	completed := domain.NewFetchRecord("https://example.com/a", domain.KindVideo)
	completed.MarkCompleted("a.mp4")
	require.NoError(t, repo.Create(completed))

	failed := domain.NewFetchRecord("https://example.com/b", domain.KindAudio)
	failed.MarkFailed(errors.New("nope"))
	require.NoError(t, repo.Create(failed))

	require.NoError(t, repo.Create(domain.NewFetchRecord("https://example.com/c", domain.KindImage)))

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Equal(t, int64(1), stats.Processing)
}
