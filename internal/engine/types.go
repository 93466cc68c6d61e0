package engine

import (
	"time"

	"github.com/foodbridge/foodbridge/internal/repository"
)

// API-facing shapes. The repository package owns the persisted records; these
// carry the same data with JSON tags and derived fields for the HTTP layer.

type FoodPost struct {
	ID                  string     `json:"id"`
	DonorID             string     `json:"donor_id"`
	Name                string     `json:"name"`
	Category            string     `json:"category"`
	QuantityServings    int        `json:"quantity_servings"`
	SafetyWindowMinutes int        `json:"safety_window_minutes"`
	ExpiryTime          time.Time  `json:"expiry_time"`
	Status              Status     `json:"status"`
	MatchedAt           *time.Time `json:"matched_at,omitempty"`
	DeliveredAt         *time.Time `json:"delivered_at,omitempty"`
	ExpiredAt           *time.Time `json:"expired_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NewFoodPost is the donor's input for posting surplus food.
type NewFoodPost struct {
	ID                  string `json:"id"`
	DonorID             string `json:"donor_id"`
	Name                string `json:"name"`
	Category            string `json:"category"`
	QuantityServings    int    `json:"quantity_servings"`
	SafetyWindowMinutes int    `json:"safety_window_minutes"`
}

type MatchTimestamps struct {
	MatchedAt   time.Time  `json:"matched_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

type Match struct {
	ID            string          `json:"id"`
	FoodPostID    string          `json:"food_post_id"`
	OrgID         string          `json:"org_id"`
	VolunteerID   string          `json:"volunteer_id,omitempty"`
	Status        Status          `json:"status"`
	Score         float64         `json:"score"`
	DistanceKm    float64         `json:"distance_km"`
	DeliveryProof string          `json:"delivery_proof,omitempty"`
	Timestamps    MatchTimestamps `json:"timestamps"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransitionContext carries the per-transition fields a status change may
// require.
type TransitionContext struct {
	VolunteerID   string `json:"volunteer_id"`
	DeliveryProof string `json:"delivery_proof"`
}

type CapacityReport struct {
	OrgID              string `json:"org_id"`
	DailyCapacity      int    `json:"daily_capacity"`
	UsedCapacity       int    `json:"used_capacity"`
	RemainingCapacity  int    `json:"remaining_capacity"`
	UtilizationPercent int    `json:"utilization_percent"`
}

type ImpactReport struct {
	MealsSaved       int     `json:"meals_saved"`
	FoodSavedKg      float64 `json:"food_saved_kg"`
	CO2SavedKg       float64 `json:"co2_saved_kg"`
	WaterSavedLiters float64 `json:"water_saved_liters"`
	TotalDeliveries  int     `json:"total_deliveries"`
}

type HistoryEntry struct {
	FoodPostID string    `json:"food_post_id"`
	Status     Status    `json:"status"`
	ChangedAt  time.Time `json:"changed_at"`
}

func foodPostFromRepo(p *repository.FoodPost) *FoodPost {
	if p == nil {
		return nil
	}
	return &FoodPost{
		ID:                  p.ID,
		DonorID:             p.DonorID,
		Name:                p.Name,
		Category:            p.Category,
		QuantityServings:    p.QuantityServings,
		SafetyWindowMinutes: p.SafetyWindowMinutes,
		ExpiryTime:          p.ExpiryTime,
		Status:              Status(p.Status),
		MatchedAt:           p.MatchedAt,
		DeliveredAt:         p.DeliveredAt,
		ExpiredAt:           p.ExpiredAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func matchFromRepo(m *repository.Match) *Match {
	if m == nil {
		return nil
	}
	match := &Match{
		ID:         m.ID,
		FoodPostID: m.FoodPostID,
		OrgID:      m.OrgID,
		Status:     Status(m.Status),
		Score:      m.Score,
		DistanceKm: m.DistanceKm,
		Timestamps: MatchTimestamps{
			MatchedAt:   m.MatchedAt,
			AcceptedAt:  m.AcceptedAt,
			PickedUpAt:  m.PickedUpAt,
			DeliveredAt: m.DeliveredAt,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.VolunteerID != nil {
		match.VolunteerID = *m.VolunteerID
	}
	if m.DeliveryProof != nil {
		match.DeliveryProof = *m.DeliveryProof
	}
	return match
}

func historyFromRepo(entries []*repository.HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntry{
			FoodPostID: e.FoodPostID,
			Status:     Status(e.Status),
			ChangedAt:  e.ChangedAt,
		}
	}
	return out
}
