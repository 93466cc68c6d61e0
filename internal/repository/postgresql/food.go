package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/foodbridge/foodbridge/internal/db"
	"github.com/foodbridge/foodbridge/internal/repository"
)

type FoodPostRepo struct {
	db db.DB
}

func NewFoodPostRepo(db db.DB) *FoodPostRepo {
	return &FoodPostRepo{db: db}
}

func (r *FoodPostRepo) Create(ctx context.Context, post *repository.FoodPost) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO food_posts (
            id, donor_id, name, category, quantity_servings, safety_window_minutes,
            expiry_time, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, post.ID, post.DonorID, post.Name, post.Category, post.QuantityServings, post.SafetyWindowMinutes,
		post.ExpiryTime, post.Status, post.CreatedAt, post.UpdatedAt)
	return err
}

func (r *FoodPostRepo) CreateTx(ctx context.Context, tx db.Tx, post *repository.FoodPost) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO food_posts (
            id, donor_id, name, category, quantity_servings, safety_window_minutes,
            expiry_time, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, post.ID, post.DonorID, post.Name, post.Category, post.QuantityServings, post.SafetyWindowMinutes,
		post.ExpiryTime, post.Status, post.CreatedAt, post.UpdatedAt)
	return err
}

func (r *FoodPostRepo) GetByID(ctx context.Context, id string) (*repository.FoodPost, error) {
	var post repository.FoodPost
	err := r.db.Get(ctx, &post, "SELECT * FROM food_posts WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *FoodPostRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.FoodPost, error) {
	var post repository.FoodPost
	err := tx.Get(ctx, &post, "SELECT * FROM food_posts WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *FoodPostRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, post *repository.FoodPost) error {
	_, err := tx.Exec(ctx, `
        UPDATE food_posts
        SET
            status = $1,
            matched_at = $2,
            delivered_at = $3,
            expired_at = $4,
            updated_at = $5
        WHERE id = $6
    `, post.Status, post.MatchedAt, post.DeliveredAt, post.ExpiredAt, post.UpdatedAt, post.ID)
	return err
}

func (r *FoodPostRepo) GetByDonorID(ctx context.Context, donorID string, limit int, activeOnly bool) ([]*repository.FoodPost, error) {
	query := "SELECT * FROM food_posts WHERE donor_id = $1"
	args := []interface{}{donorID}

	if activeOnly {
		query += " AND status NOT IN ('DELIVERED', 'EXPIRED')"
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var posts []*repository.FoodPost
	err := r.db.Select(ctx, &posts, query, args...)
	return posts, err
}

func (r *FoodPostRepo) ListAvailable(ctx context.Context, now time.Time) ([]*repository.FoodPost, error) {
	query := `
        SELECT * FROM food_posts
        WHERE status = 'POSTED' AND expiry_time > $1
        ORDER BY expiry_time ASC
    `
	var posts []*repository.FoodPost
	err := r.db.Select(ctx, &posts, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list available food posts: %w", err)
	}
	return posts, nil
}

func (r *FoodPostRepo) ListOverdue(ctx context.Context, now time.Time) ([]*repository.FoodPost, error) {
	query := `
        SELECT * FROM food_posts
        WHERE status NOT IN ('DELIVERED', 'EXPIRED') AND expiry_time <= $1
        ORDER BY expiry_time ASC
    `
	var posts []*repository.FoodPost
	err := r.db.Select(ctx, &posts, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue food posts: %w", err)
	}
	return posts, nil
}
