package postgresql

import (
	"context"
	"fmt"

	"github.com/foodbridge/foodbridge/internal/db"
	"github.com/foodbridge/foodbridge/internal/repository"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO food_post_history (food_post_id, status, changed_at)
        VALUES ($1, $2, $3)
    `, entry.FoodPostID, entry.Status, entry.ChangedAt)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (r *HistoryRepo) GetByFoodPostID(ctx context.Context, foodPostID string) ([]*repository.HistoryEntry, error) {
	var entries []*repository.HistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM food_post_history
        WHERE food_post_id = $1
        ORDER BY changed_at ASC
    `, foodPostID)
	if err != nil {
		return nil, fmt.Errorf("failed to get food post history: %w", err)
	}
	return entries, nil
}
