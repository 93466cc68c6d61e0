package expiry

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/foodbridge/foodbridge/internal/engine"
)

// Engine is the slice of the orchestrator the sweeper needs.
type Engine interface {
	OverduePostIDs(ctx context.Context) ([]string, error)
	Expire(ctx context.Context, foodPostID string) error
}

// Sweeper is the expiry signal source: on every tick it finds posts whose
// safety window has elapsed and pushes them to Expired through the engine.
type Sweeper struct {
	engine         Engine
	interval       time.Duration
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewSweeper(eng Engine, interval time.Duration) *Sweeper {
	return &Sweeper{
		engine:         eng,
		interval:       interval,
		shutdownSignal: make(chan struct{}),
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	log.Println("Starting expiry sweeper...")
	s.wg.Add(1)
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.SweepOnce(ctx); err != nil {
				log.Printf("ERROR: expiry sweep failed: %v", err)
			}
		case <-s.shutdownSignal:
			log.Println("Expiry sweeper received shutdown signal, stopping...")
			return
		case <-ctx.Done():
			log.Println("Expiry sweeper context cancelled, stopping...")
			s.Shutdown()
			return
		}
	}
}

// SweepOnce runs a single pass. A post that reaches a terminal state between
// the listing and the expiry call is skipped, not treated as a failure.
func (s *Sweeper) SweepOnce(ctx context.Context) error {
	ids, err := s.engine.OverduePostIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := s.engine.Expire(ctx, id); err != nil {
			if errors.Is(err, engine.ErrInvalidState) || errors.Is(err, engine.ErrNotFound) {
				continue
			}
			log.Printf("ERROR: failed to expire food post %s: %v", id, err)
		}
	}
	return nil
}

func (s *Sweeper) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.shutdownSignal)
		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			log.Println("Expiry sweeper shutdown complete.")
		case <-time.After(10 * time.Second):
			log.Println("WARN: expiry sweeper shutdown timed out.")
		}
	})
}
