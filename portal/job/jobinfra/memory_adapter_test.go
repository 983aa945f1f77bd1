package jobinfra

import (
	"context"
	"testing"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_AppendOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository([]job.Job{{ID: "seed-1", Title: "Seeded"}})

	require.NoError(t, repo.Add(ctx, &job.Job{ID: "2", Title: "Second"}))
	require.NoError(t, repo.Add(ctx, &job.Job{ID: "3", Title: "Third"}))

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, kernel.JobID("seed-1"), jobs[0].ID)
	assert.Equal(t, kernel.JobID("3"), jobs[2].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemoryRepository_SnapshotUnaffectedByLaterAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(nil)
	require.NoError(t, repo.Add(ctx, &job.Job{ID: "1"}))

	snapshot, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, &job.Job{ID: "2"}))

	assert.Len(t, snapshot, 1, "earlier snapshot must not grow")

	current, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, current, 2)
}

func TestMemoryRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository([]job.Job{{ID: "1", Title: "Only"}})

	found, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, kernel.JobTitle("Only"), found.Title)

	_, err = repo.GetByID(ctx, "nope")
	assert.Error(t, err)
}
