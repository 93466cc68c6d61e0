package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodbridge/foodbridge/internal/engine"
	"github.com/foodbridge/foodbridge/internal/repository"
)

func TestOrchestrator_GetMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		o, m := newOrchestrator(ctrl, engine.Config{})

		volunteer := "vol-1"
		m.match.EXPECT().GetByID(gomock.Any(), "match-1").Return(&repository.Match{
			ID:          "match-1",
			FoodPostID:  "post-1",
			OrgID:       "org-1",
			VolunteerID: &volunteer,
			Status:      "PICKED_UP",
			Score:       0.85,
		}, nil)

		got, err := o.GetMatch(ctx, "match-1")
		require.NoError(t, err)
		assert.Equal(t, "match-1", got.ID)
		assert.Equal(t, "vol-1", got.VolunteerID)
		assert.Equal(t, engine.StatusPickedUp, got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		o, m := newOrchestrator(ctrl, engine.Config{})

		m.match.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, repository.ErrObjectNotFound)

		_, err := o.GetMatch(ctx, "missing")
		assert.ErrorIs(t, err, engine.ErrNotFound)
	})
}

func TestOrchestrator_ListMatchesByOrg(t *testing.T) {
	ctx := context.Background()

	t.Run("applies default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		o, m := newOrchestrator(ctrl, engine.Config{})

		m.match.EXPECT().ListByOrg(gomock.Any(), "org-1", "", 20, 0).Return([]*repository.Match{
			{ID: "match-1", OrgID: "org-1", Status: "MATCHED"},
		}, nil)

		got, err := o.ListMatchesByOrg(ctx, "org-1", "", 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "match-1", got[0].ID)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		o, _ := newOrchestrator(ctrl, engine.Config{})

		_, err := o.ListMatchesByOrg(ctx, "org-1", "PENDING", 10, 0)
		assert.ErrorIs(t, err, engine.ErrValidation)
	})
}

func TestOrchestrator_OrgCapacity(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, m := newOrchestrator(ctrl, engine.Config{})

	m.org.EXPECT().GetByID(gomock.Any(), "org-1").Return(&repository.Org{
		ID:            "org-1",
		DailyCapacity: 200,
		UsedCapacity:  150,
	}, nil)

	got, err := o.OrgCapacity(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, 200, got.DailyCapacity)
	assert.Equal(t, 150, got.UsedCapacity)
	assert.Equal(t, 50, got.RemainingCapacity)
	assert.Equal(t, 75, got.UtilizationPercent)
}

func TestOrchestrator_OrgImpact(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, m := newOrchestrator(ctrl, engine.Config{})

	m.impact.EXPECT().SummarizeByOrg(gomock.Any(), "org-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, since time.Time) (*repository.ImpactSummary, error) {
			// "all" period queries from the zero time.
			assert.True(t, since.IsZero())
			return &repository.ImpactSummary{
				MealsSaved:       120,
				FoodSavedKg:      60,
				CO2SavedKg:       300,
				WaterSavedLiters: 120000,
				TotalDeliveries:  3,
			}, nil
		})

	got, err := o.OrgImpact(ctx, "org-1", "")
	require.NoError(t, err)
	assert.Equal(t, 120, got.MealsSaved)
	assert.Equal(t, 3, got.TotalDeliveries)
}

func TestOrchestrator_RecommendMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks verified orgs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		o, m := newOrchestrator(ctrl, engine.Config{})

		post := &repository.FoodPost{
			ID:                  "post-1",
			Category:            engine.CategoryMeals,
			QuantityServings:    20,
			SafetyWindowMinutes: 120,
			ExpiryTime:          time.Now().UTC().Add(2 * time.Hour),
			Status:              "POSTED",
		}
		m.food.EXPECT().GetByID(gomock.Any(), "post-1").Return(post, nil)
		m.org.EXPECT().ListVerified(gomock.Any()).Return([]*repository.Org{
			{ID: "org-1", Name: "Shelter One", DailyCapacity: 100, UsedCapacity: 0},
			{ID: "org-2", Name: "Shelter Two", DailyCapacity: 100, UsedCapacity: 0},
		}, nil)
		m.distance.EXPECT().DistanceKm(gomock.Any(), "post-1", "org-1").Return(1.0, nil)
		m.distance.EXPECT().DistanceKm(gomock.Any(), "post-1", "org-2").Return(9.0, nil)
		m.match.EXPECT().CountRecentAccepted(gomock.Any(), "org-1", gomock.Any()).Return(0, nil)
		m.match.EXPECT().CountRecentAccepted(gomock.Any(), "org-2", gomock.Any()).Return(0, nil)

		got, err := o.RecommendMatches(ctx, "post-1", 5)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "org-1", got[0].OrgID)
	})

	t.Run("post must still be posted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		o, m := newOrchestrator(ctrl, engine.Config{})

		m.food.EXPECT().GetByID(gomock.Any(), "post-1").Return(&repository.FoodPost{
			ID:     "post-1",
			Status: "MATCHED",
		}, nil)

		_, err := o.RecommendMatches(ctx, "post-1", 5)
		assert.ErrorIs(t, err, engine.ErrInvalidState)
	})

	t.Run("post not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		o, m := newOrchestrator(ctrl, engine.Config{})

		m.food.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, repository.ErrObjectNotFound)

		_, err := o.RecommendMatches(ctx, "missing", 5)
		assert.ErrorIs(t, err, engine.ErrNotFound)
	})
}

func TestOrchestrator_OverduePostIDs(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, m := newOrchestrator(ctrl, engine.Config{})

	m.food.EXPECT().ListOverdue(gomock.Any(), gomock.Any()).Return([]*repository.FoodPost{
		{ID: "post-1"},
		{ID: "post-2"},
	}, nil)

	got, err := o.OverduePostIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-1", "post-2"}, got)
}
