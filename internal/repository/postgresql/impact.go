package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/foodbridge/foodbridge/internal/db"
	"github.com/foodbridge/foodbridge/internal/repository"
)

type ImpactRepo struct {
	db db.DB
}

func NewImpactRepo(db db.DB) *ImpactRepo {
	return &ImpactRepo{db: db}
}

// CreateTx inserts the impact row for a delivered match. The unique index on
// match_id makes a retried delivery a no-op instead of a second row.
func (r *ImpactRepo) CreateTx(ctx context.Context, tx db.Tx, log *repository.ImpactLog) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO impact_logs (
            match_id, food_post_id, org_id, meals_saved, food_saved_kg,
            co2_saved_kg, water_saved_liters, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (match_id) DO NOTHING
    `, log.MatchID, log.FoodPostID, log.OrgID, log.MealsSaved, log.FoodSavedKg,
		log.CO2SavedKg, log.WaterSavedLiters, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert impact log: %w", err)
	}
	return nil
}

func (r *ImpactRepo) SummarizeByOrg(ctx context.Context, orgID string, since time.Time) (*repository.ImpactSummary, error) {
	var summary repository.ImpactSummary
	err := r.db.Get(ctx, &summary, `
        SELECT
            COALESCE(SUM(meals_saved), 0) AS meals_saved,
            COALESCE(SUM(food_saved_kg), 0) AS food_saved_kg,
            COALESCE(SUM(co2_saved_kg), 0) AS co2_saved_kg,
            COALESCE(SUM(water_saved_liters), 0) AS water_saved_liters,
            COUNT(DISTINCT food_post_id) AS total_deliveries
        FROM impact_logs
        WHERE org_id = $1 AND created_at >= $2
    `, orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize org impact: %w", err)
	}
	return &summary, nil
}

func (r *ImpactRepo) SummarizeByDonor(ctx context.Context, donorID string, since time.Time) (*repository.ImpactSummary, error) {
	var summary repository.ImpactSummary
	err := r.db.Get(ctx, &summary, `
        SELECT
            COALESCE(SUM(il.meals_saved), 0) AS meals_saved,
            COALESCE(SUM(il.food_saved_kg), 0) AS food_saved_kg,
            COALESCE(SUM(il.co2_saved_kg), 0) AS co2_saved_kg,
            COALESCE(SUM(il.water_saved_liters), 0) AS water_saved_liters,
            COUNT(DISTINCT il.food_post_id) AS total_deliveries
        FROM impact_logs il
        JOIN food_posts fp ON fp.id = il.food_post_id
        WHERE fp.donor_id = $1 AND il.created_at >= $2
    `, donorID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize donor impact: %w", err)
	}
	return &summary, nil
}
