package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbridge/foodbridge/internal/engine"
	"github.com/foodbridge/foodbridge/internal/repository"
)

func rankedPost(now time.Time) *repository.FoodPost {
	return &repository.FoodPost{
		ID:                  "post-1",
		DonorID:             "donor-1",
		Category:            engine.CategoryMeals,
		QuantityServings:    20,
		SafetyWindowMinutes: 120,
		ExpiryTime:          now.Add(2 * time.Hour),
		Status:              "POSTED",
	}
}

func TestRankCandidates_Ordering(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := rankedPost(now)

	orgs := []*repository.Org{
		{ID: "org-near", Name: "Near Shelter", DailyCapacity: 100, UsedCapacity: 0},
		{ID: "org-far", Name: "Far Shelter", DailyCapacity: 100, UsedCapacity: 0},
	}
	distances := map[string]float64{
		"org-near": 1,
		"org-far":  12,
	}

	got := engine.RankCandidates(now, post, orgs, distances, nil, 0)

	require.Len(t, got, 2)
	assert.Equal(t, "org-near", got[0].OrgID)
	assert.Equal(t, "org-far", got[1].OrgID)
	assert.Greater(t, got[0].Score, got[1].Score)
}

func TestRankCandidates_SkipsFullOrgs(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := rankedPost(now)

	orgs := []*repository.Org{
		{ID: "org-full", DailyCapacity: 50, UsedCapacity: 50},
		{ID: "org-open", DailyCapacity: 50, UsedCapacity: 10},
	}
	distances := map[string]float64{"org-full": 1, "org-open": 1}

	got := engine.RankCandidates(now, post, orgs, distances, nil, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "org-open", got[0].OrgID)
	assert.Equal(t, 40, got[0].AvailableCapacity)
}

func TestRankCandidates_DemandBoost(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := rankedPost(now)

	orgs := []*repository.Org{
		{ID: "org-quiet", DailyCapacity: 100, UsedCapacity: 0},
		{ID: "org-busy", DailyCapacity: 100, UsedCapacity: 0},
		{ID: "org-swamped", DailyCapacity: 100, UsedCapacity: 0},
	}
	// Identical distance so only recent demand separates them.
	distances := map[string]float64{"org-quiet": 8, "org-busy": 8, "org-swamped": 8}
	recent := map[string]int{"org-busy": 5, "org-swamped": 10}

	got := engine.RankCandidates(now, post, orgs, distances, recent, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "org-swamped", got[0].OrgID)
	assert.Equal(t, 1.25, got[0].DemandBoost)
	assert.Equal(t, "org-busy", got[1].OrgID)
	assert.Equal(t, 1.15, got[1].DemandBoost)
	assert.Equal(t, "org-quiet", got[2].OrgID)
	assert.Equal(t, 1.0, got[2].DemandBoost)
}

func TestRankCandidates_TopN(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := rankedPost(now)

	var orgs []*repository.Org
	distances := map[string]float64{}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		orgs = append(orgs, &repository.Org{ID: id, DailyCapacity: 100, UsedCapacity: 0})
		distances[id] = 3
	}

	got := engine.RankCandidates(now, post, orgs, distances, nil, 2)
	assert.Len(t, got, 2)
}

func TestRankCandidates_MissingDistanceTreatedAsOutOfRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := rankedPost(now)

	orgs := []*repository.Org{
		{ID: "org-known", DailyCapacity: 100, UsedCapacity: 0},
		{ID: "org-unknown", DailyCapacity: 100, UsedCapacity: 0},
	}
	distances := map[string]float64{"org-known": 2}

	got := engine.RankCandidates(now, post, orgs, distances, nil, 0)

	require.Len(t, got, 2)
	assert.Equal(t, "org-known", got[0].OrgID)
	assert.Equal(t, "org-unknown", got[1].OrgID)
	assert.Greater(t, got[0].Score, got[1].Score)
}

func TestRankCandidates_ExpiredPostScoresZeroFreshness(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := rankedPost(now)
	post.ExpiryTime = now.Add(-time.Minute)

	fresh := rankedPost(now)

	orgs := []*repository.Org{{ID: "org-1", DailyCapacity: 100, UsedCapacity: 0}}
	distances := map[string]float64{"org-1": 2}

	stale := engine.RankCandidates(now, post, orgs, distances, nil, 0)
	alive := engine.RankCandidates(now, fresh, orgs, distances, nil, 0)

	require.Len(t, stale, 1)
	require.Len(t, alive, 1)
	assert.Less(t, stale[0].Score, alive[0].Score)
}
