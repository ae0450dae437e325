package repositories

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPostgresRepository connects to REIGN_TEST_POSTGRES_URL or skips the test.
func newTestPostgresRepository(t *testing.T) *PostgresRepository {
	t.Helper()
	connStr := os.Getenv("REIGN_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("REIGN_TEST_POSTGRES_URL is not set")
	}
	ctx := context.Background()
	repo, err := NewPostgresRepository(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(ctx) })
	return repo
}

func TestPostgresRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestPostgresRepository(t)

	reign := testReign(uuid.NewString(), time.Now().UTC().Truncate(time.Millisecond))
	require.NoError(t, repo.SaveReign(ctx, reign))

	got, err := repo.GetReign(ctx, reign.ID)
	require.NoError(t, err)
	assert.Equal(t, reign.ID, got.ID)
	assert.Equal(t, reign.Meters, got.Meters)
	assert.Equal(t, reign.Endings, got.Endings)

	_, err = repo.GetReign(ctx, uuid.NewString())
	assert.True(t, IsNotFound(err))
}

func TestPostgresRepository_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	repo := newTestPostgresRepository(t)

	require.NoError(t, repo.SaveReign(ctx, testReign(uuid.NewString(), time.Now().UTC())))

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, 2*workers)
	for range workers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := repo.ListReigns(ctx, 5)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			errs <- repo.SaveReign(ctx, testReign(uuid.NewString(), time.Now().UTC()))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
