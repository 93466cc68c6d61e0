package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge/foodbridge/internal/cache"
	"github.com/foodbridge/foodbridge/internal/repository"
)

type stubMatchRepo struct {
	matches []*repository.Match
	err     error
}

func (s *stubMatchRepo) ListActive(ctx context.Context) ([]*repository.Match, error) {
	return s.matches, s.err
}

func TestMatchCache_LoadInitialData(t *testing.T) {
	t.Run("loads active matches", func(t *testing.T) {
		repo := &stubMatchRepo{matches: []*repository.Match{
			{ID: "match-1", Status: "MATCHED"},
			{ID: "match-2", Status: "ACCEPTED"},
		}}
		c := cache.NewMatchCache(repo)

		err := c.LoadInitialData(context.Background())
		require.NoError(t, err)

		got, found := c.Get("match-1")
		assert.True(t, found)
		assert.Equal(t, "match-1", got.ID)

		_, found = c.Get("match-2")
		assert.True(t, found)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := &stubMatchRepo{err: errors.New("db down")}
		c := cache.NewMatchCache(repo)

		err := c.LoadInitialData(context.Background())
		assert.Error(t, err)
	})
}

func TestMatchCache_SetAndGet(t *testing.T) {
	c := cache.NewMatchCache(&stubMatchRepo{})

	c.Set(&repository.Match{ID: "match-1", Status: "MATCHED", Score: 0.9})

	got, found := c.Get("match-1")
	require.True(t, found)
	assert.Equal(t, 0.9, got.Score)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestMatchCache_GetReturnsCopy(t *testing.T) {
	c := cache.NewMatchCache(&stubMatchRepo{})
	c.Set(&repository.Match{ID: "match-1", Status: "MATCHED", Score: 0.9})

	first, found := c.Get("match-1")
	require.True(t, found)
	first.Score = 0.1

	second, found := c.Get("match-1")
	require.True(t, found)
	assert.Equal(t, 0.9, second.Score)
}

func TestMatchCache_TerminalStatusEvicts(t *testing.T) {
	c := cache.NewMatchCache(&stubMatchRepo{})
	c.Set(&repository.Match{ID: "match-1", Status: "PICKED_UP"})

	_, found := c.Get("match-1")
	require.True(t, found)

	c.Set(&repository.Match{ID: "match-1", Status: "DELIVERED"})

	_, found = c.Get("match-1")
	assert.False(t, found)
}

func TestMatchCache_Delete(t *testing.T) {
	c := cache.NewMatchCache(&stubMatchRepo{})
	c.Set(&repository.Match{ID: "match-1", Status: "MATCHED"})

	c.Delete("match-1")
	_, found := c.Get("match-1")
	assert.False(t, found)

	// Deleting an absent key is a no-op.
	c.Delete("missing")
}

func TestMatchCache_ConcurrentAccess(t *testing.T) {
	c := cache.NewMatchCache(&stubMatchRepo{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set(&repository.Match{ID: "match-1", Status: "MATCHED"})
		}()
		go func() {
			defer wg.Done()
			c.Get("match-1")
		}()
	}
	wg.Wait()
}
