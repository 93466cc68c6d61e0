package engine

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/foodbridge/foodbridge/internal/repository"
)

// Candidate is one ranked org for a food post.
type Candidate struct {
	OrgID                  string  `json:"org_id"`
	OrgName                string  `json:"org_name"`
	DistanceKm             float64 `json:"distance_km"`
	AvailableCapacity      int     `json:"available_capacity"`
	Score                  float64 `json:"score"`
	DemandBoost            float64 `json:"demand_boost"`
	Reasoning              string  `json:"reasoning"`
	EstimatedPickupMinutes int     `json:"estimated_pickup_minutes"`
}

const (
	rankMaxDistanceKm = 15.0

	rankDistanceWeight  = 0.40
	rankFreshnessWeight = 0.30
	rankCapacityWeight  = 0.20
	rankCategoryWeight  = 0.10

	// Orgs that accepted this many matches in the last 30 days get a boost.
	demandBoostHighCount = 5
	demandBoostCritCount = 10
	demandBoostHigh      = 1.15
	demandBoostCrit      = 1.25

	pickupSpeedKmh      = 25.0
	pickupBufferMinutes = 10
)

func distanceScore(distanceKm float64) float64 {
	if distanceKm > rankMaxDistanceKm {
		return 0
	}
	return math.Max(0, 1-distanceKm/rankMaxDistanceKm)
}

func freshnessScore(now, expiry time.Time, safetyWindowMinutes int) float64 {
	if safetyWindowMinutes <= 0 {
		return 0
	}
	minutesRemaining := expiry.Sub(now).Minutes()
	if minutesRemaining <= 0 {
		return 0
	}
	if minutesRemaining >= float64(safetyWindowMinutes) {
		return 1
	}
	return minutesRemaining / float64(safetyWindowMinutes)
}

func capacityScore(availableCapacity, requiredServings int) float64 {
	if availableCapacity <= 0 {
		return 0
	}
	if requiredServings <= 0 || availableCapacity >= requiredServings {
		return 1
	}
	return float64(availableCapacity) / float64(requiredServings)
}

func categoryScore(category string) float64 {
	if highDemand[category] {
		return 1.0
	}
	return 0.3
}

func demandBoost(recentAccepted int) float64 {
	switch {
	case recentAccepted >= demandBoostCritCount:
		return demandBoostCrit
	case recentAccepted >= demandBoostHighCount:
		return demandBoostHigh
	default:
		return 1.0
	}
}

func estimatePickupMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm/pickupSpeedKmh*60)) + pickupBufferMinutes
}

func reasoning(distanceKm, freshness float64, available, required, recentAccepted int) string {
	var reasons []string

	if distanceKm < 2 {
		reasons = append(reasons, "Very close location")
	} else if distanceKm < 5 {
		reasons = append(reasons, "Nearby location")
	} else if distanceKm < 10 {
		reasons = append(reasons, "Reasonable distance")
	}

	if freshness > 0.8 {
		reasons = append(reasons, "Excellent freshness window")
	} else if freshness > 0.5 {
		reasons = append(reasons, "Good freshness window")
	} else if freshness > 0.2 {
		reasons = append(reasons, "Short freshness window")
	}

	if available >= required*3/2 {
		reasons = append(reasons, "More than enough capacity")
	} else if available >= required {
		reasons = append(reasons, "Sufficient capacity")
	} else {
		reasons = append(reasons, "Capacity constraints")
	}

	if recentAccepted >= demandBoostCritCount {
		reasons = append(reasons, "Critical urgent need")
	} else if recentAccepted >= demandBoostHighCount {
		reasons = append(reasons, "High current demand")
	}

	return strings.Join(reasons, ". ") + "."
}

// RankCandidates scores every org against the post and returns the top n,
// best first. Orgs with no remaining capacity are skipped. distances and
// recentAccepted are keyed by org id; an org missing from distances is
// treated as out of range.
func RankCandidates(now time.Time, post *repository.FoodPost, orgs []*repository.Org, distances map[string]float64, recentAccepted map[string]int, n int) []Candidate {
	ledger := Ledger{}
	candidates := make([]Candidate, 0, len(orgs))

	for _, org := range orgs {
		available := ledger.Remaining(org)
		if available <= 0 {
			continue
		}

		distanceKm, ok := distances[org.ID]
		if !ok {
			distanceKm = rankMaxDistanceKm + 1
		}

		fresh := freshnessScore(now, post.ExpiryTime, post.SafetyWindowMinutes)
		boost := demandBoost(recentAccepted[org.ID])

		score := distanceScore(distanceKm)*rankDistanceWeight +
			fresh*rankFreshnessWeight +
			capacityScore(available, post.QuantityServings)*rankCapacityWeight +
			categoryScore(post.Category)*rankCategoryWeight
		score = math.Min(1.0, score*boost)

		candidates = append(candidates, Candidate{
			OrgID:                  org.ID,
			OrgName:                org.Name,
			DistanceKm:             math.Round(distanceKm*10) / 10,
			AvailableCapacity:      available,
			Score:                  math.Round(score*100) / 100,
			DemandBoost:            boost,
			Reasoning:              reasoning(distanceKm, fresh, available, post.QuantityServings, recentAccepted[org.ID]),
			EstimatedPickupMinutes: estimatePickupMinutes(distanceKm),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if n > 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
