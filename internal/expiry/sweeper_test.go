package expiry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/foodbridge/foodbridge/internal/engine"
	"github.com/foodbridge/foodbridge/internal/expiry"
)

type fakeEngine struct {
	overdue    []string
	overdueErr error
	expireErrs map[string]error
	expired    []string
}

func (f *fakeEngine) OverduePostIDs(ctx context.Context) ([]string, error) {
	return f.overdue, f.overdueErr
}

func (f *fakeEngine) Expire(ctx context.Context, foodPostID string) error {
	if err, ok := f.expireErrs[foodPostID]; ok {
		return err
	}
	f.expired = append(f.expired, foodPostID)
	return nil
}

func TestSweeper_SweepOnce(t *testing.T) {
	t.Run("expires every overdue post", func(t *testing.T) {
		eng := &fakeEngine{overdue: []string{"post-1", "post-2", "post-3"}}
		s := expiry.NewSweeper(eng, time.Minute)

		err := s.SweepOnce(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"post-1", "post-2", "post-3"}, eng.expired)
	})

	t.Run("skips posts that went terminal since listing", func(t *testing.T) {
		eng := &fakeEngine{
			overdue: []string{"post-1", "post-2"},
			expireErrs: map[string]error{
				"post-1": fmt.Errorf("%w: food post post-1 is already DELIVERED", engine.ErrInvalidState),
			},
		}
		s := expiry.NewSweeper(eng, time.Minute)

		err := s.SweepOnce(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"post-2"}, eng.expired)
	})

	t.Run("skips posts deleted since listing", func(t *testing.T) {
		eng := &fakeEngine{
			overdue: []string{"post-1"},
			expireErrs: map[string]error{
				"post-1": fmt.Errorf("%w: food post post-1", engine.ErrNotFound),
			},
		}
		s := expiry.NewSweeper(eng, time.Minute)

		err := s.SweepOnce(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, eng.expired)
	})

	t.Run("listing failure surfaces", func(t *testing.T) {
		eng := &fakeEngine{overdueErr: errors.New("db down")}
		s := expiry.NewSweeper(eng, time.Minute)

		err := s.SweepOnce(context.Background())
		assert.Error(t, err)
	})

	t.Run("other expiry failures do not stop the pass", func(t *testing.T) {
		eng := &fakeEngine{
			overdue: []string{"post-1", "post-2"},
			expireErrs: map[string]error{
				"post-1": errors.New("connection reset"),
			},
		}
		s := expiry.NewSweeper(eng, time.Minute)

		err := s.SweepOnce(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"post-2"}, eng.expired)
	})
}
