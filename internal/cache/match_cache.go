package cache

import (
	"context"
	"log"
	"sync"

	"github.com/foodbridge/foodbridge/internal/metrics"
	"github.com/foodbridge/foodbridge/internal/repository"
)

type MatchRepository interface {
	ListActive(ctx context.Context) ([]*repository.Match, error)
}

// MatchCache keeps in-flight matches in memory so the hot GET path skips the
// database. Matches leaving an active status are evicted on Set.
type MatchCache struct {
	mu    sync.RWMutex
	cache map[string]*repository.Match
	repo  MatchRepository
}

func NewMatchCache(repo MatchRepository) *MatchCache {
	return &MatchCache{
		cache: make(map[string]*repository.Match),
		repo:  repo,
	}
}

func (c *MatchCache) LoadInitialData(ctx context.Context) error {
	matches, err := c.repo.ListActive(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, match := range matches {
		matchCopy := *match
		c.cache[match.ID] = &matchCopy
	}
	metrics.MatchCacheItems.Set(float64(len(c.cache)))
	log.Printf("Loaded %d active matches into cache", len(c.cache))
	return nil
}

func (c *MatchCache) Get(matchID string) (*repository.Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	match, found := c.cache[matchID]
	if !found {
		return nil, false
	}
	matchCopy := *match
	return &matchCopy, true
}

func (c *MatchCache) Set(match *repository.Match) {
	if !isActiveStatus(match.Status) {
		c.Delete(match.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	matchCopy := *match
	c.cache[match.ID] = &matchCopy
	metrics.MatchCacheItems.Set(float64(len(c.cache)))
}

func (c *MatchCache) Delete(matchID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[matchID]; found {
		delete(c.cache, matchID)
		metrics.MatchCacheItems.Set(float64(len(c.cache)))
	}
}

func isActiveStatus(status string) bool {
	return status == "MATCHED" || status == "ACCEPTED" || status == "PICKED_UP"
}
