package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodbridge/foodbridge/internal/engine"
)

func TestCheckTransition_SkipPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current engine.Status
		target  engine.Status
		wantErr error
	}{
		{"posted to matched", engine.StatusPosted, engine.StatusMatched, nil},
		{"matched to accepted", engine.StatusMatched, engine.StatusAccepted, nil},
		{"accepted to picked up", engine.StatusAccepted, engine.StatusPickedUp, nil},
		{"picked up to delivered", engine.StatusPickedUp, engine.StatusDelivered, nil},
		{"skip from posted straight to delivered", engine.StatusPosted, engine.StatusDelivered, nil},
		{"skip from matched to picked up", engine.StatusMatched, engine.StatusPickedUp, nil},
		{"backward move rejected", engine.StatusAccepted, engine.StatusMatched, engine.ErrInvalidState},
		{"same status rejected", engine.StatusMatched, engine.StatusMatched, engine.ErrInvalidState},
		{"delivered is terminal", engine.StatusDelivered, engine.StatusExpired, engine.ErrInvalidState},
		{"expired is terminal", engine.StatusExpired, engine.StatusPosted, engine.ErrInvalidState},
		{"expire from posted", engine.StatusPosted, engine.StatusExpired, nil},
		{"expire from picked up", engine.StatusPickedUp, engine.StatusExpired, nil},
		{"unknown target", engine.StatusPosted, engine.Status("LOST"), engine.ErrValidation},
		{"unknown current", engine.Status("LOST"), engine.StatusMatched, engine.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := engine.CheckTransition(tc.current, tc.target, engine.TransitionSkip)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestCheckTransition_AdjacentPolicy(t *testing.T) {
	t.Parallel()

	t.Run("adjacent moves pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, engine.CheckTransition(engine.StatusPosted, engine.StatusMatched, engine.TransitionAdjacent))
		assert.NoError(t, engine.CheckTransition(engine.StatusPickedUp, engine.StatusDelivered, engine.TransitionAdjacent))
	})

	t.Run("skips are rejected", func(t *testing.T) {
		t.Parallel()
		err := engine.CheckTransition(engine.StatusMatched, engine.StatusDelivered, engine.TransitionAdjacent)
		assert.ErrorIs(t, err, engine.ErrInvalidState)
	})

	t.Run("expiry is exempt from the adjacency rule", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, engine.CheckTransition(engine.StatusPosted, engine.StatusExpired, engine.TransitionAdjacent))
		assert.NoError(t, engine.CheckTransition(engine.StatusAccepted, engine.StatusExpired, engine.TransitionAdjacent))
	})
}

func TestStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.True(t, engine.StatusDelivered.Terminal())
	assert.True(t, engine.StatusExpired.Terminal())
	assert.False(t, engine.StatusPosted.Terminal())
	assert.False(t, engine.StatusMatched.Terminal())
	assert.False(t, engine.StatusAccepted.Terminal())
	assert.False(t, engine.StatusPickedUp.Terminal())
}

func TestValidStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []engine.Status{
		engine.StatusPosted, engine.StatusMatched, engine.StatusAccepted,
		engine.StatusPickedUp, engine.StatusDelivered, engine.StatusExpired,
	} {
		assert.True(t, engine.ValidStatus(s), string(s))
	}
	assert.False(t, engine.ValidStatus(engine.Status("CANCELLED")))
	assert.False(t, engine.ValidStatus(engine.Status("")))
}
