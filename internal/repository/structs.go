package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type FoodPost struct {
	ID                  string     `db:"id"`
	DonorID             string     `db:"donor_id"`
	Name                string     `db:"name"`
	Category            string     `db:"category"`
	QuantityServings    int        `db:"quantity_servings"`
	SafetyWindowMinutes int        `db:"safety_window_minutes"`
	ExpiryTime          time.Time  `db:"expiry_time"`
	Status              string     `db:"status"`
	MatchedAt           *time.Time `db:"matched_at"`
	DeliveredAt         *time.Time `db:"delivered_at"`
	ExpiredAt           *time.Time `db:"expired_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

type Org struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Verified      bool      `db:"verified"`
	DailyCapacity int       `db:"daily_capacity"`
	UsedCapacity  int       `db:"used_capacity"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Match struct {
	ID            string     `db:"id"`
	FoodPostID    string     `db:"food_post_id"`
	OrgID         string     `db:"org_id"`
	VolunteerID   *string    `db:"volunteer_id"`
	Status        string     `db:"status"`
	Score         float64    `db:"score"`
	DistanceKm    float64    `db:"distance_km"`
	DeliveryProof *string    `db:"delivery_proof"`
	MatchedAt     time.Time  `db:"matched_at"`
	AcceptedAt    *time.Time `db:"accepted_at"`
	PickedUpAt    *time.Time `db:"picked_up_at"`
	DeliveredAt   *time.Time `db:"delivered_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type ImpactLog struct {
	ID               int64     `db:"id"`
	MatchID          string    `db:"match_id"`
	FoodPostID       string    `db:"food_post_id"`
	OrgID            string    `db:"org_id"`
	MealsSaved       int       `db:"meals_saved"`
	FoodSavedKg      float64   `db:"food_saved_kg"`
	CO2SavedKg       float64   `db:"co2_saved_kg"`
	WaterSavedLiters float64   `db:"water_saved_liters"`
	CreatedAt        time.Time `db:"created_at"`
}

type ImpactSummary struct {
	MealsSaved       int     `db:"meals_saved"`
	FoodSavedKg      float64 `db:"food_saved_kg"`
	CO2SavedKg       float64 `db:"co2_saved_kg"`
	WaterSavedLiters float64 `db:"water_saved_liters"`
	TotalDeliveries  int     `db:"total_deliveries"`
}

type HistoryEntry struct {
	ID         int64     `db:"id"`
	FoodPostID string    `db:"food_post_id"`
	Status     string    `db:"status"`
	ChangedAt  time.Time `db:"changed_at"`
}
