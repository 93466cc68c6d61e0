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

type MatchRepo struct {
	db db.DB
}

func NewMatchRepo(db db.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

func (r *MatchRepo) CreateTx(ctx context.Context, tx db.Tx, match *repository.Match) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO matches (
            id, food_post_id, org_id, volunteer_id, status, score, distance_km,
            delivery_proof, matched_at, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, match.ID, match.FoodPostID, match.OrgID, match.VolunteerID, match.Status, match.Score,
		match.DistanceKm, match.DeliveryProof, match.MatchedAt, match.CreatedAt, match.UpdatedAt)
	return err
}

func (r *MatchRepo) GetByID(ctx context.Context, id string) (*repository.Match, error) {
	var match repository.Match
	err := r.db.Get(ctx, &match, "SELECT * FROM matches WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Match, error) {
	var match repository.Match
	err := tx.Get(ctx, &match, "SELECT * FROM matches WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepo) UpdateTx(ctx context.Context, tx db.Tx, match *repository.Match) error {
	_, err := tx.Exec(ctx, `
        UPDATE matches
        SET
            volunteer_id = $1,
            status = $2,
            delivery_proof = $3,
            accepted_at = $4,
            picked_up_at = $5,
            delivered_at = $6,
            updated_at = $7
        WHERE id = $8
    `, match.VolunteerID, match.Status, match.DeliveryProof, match.AcceptedAt, match.PickedUpAt,
		match.DeliveredAt, match.UpdatedAt, match.ID)
	return err
}

func (r *MatchRepo) ListByOrg(ctx context.Context, orgID, status string, limit, offset int) ([]*repository.Match, error) {
	query := "SELECT * FROM matches WHERE org_id = $1"
	args := []interface{}{orgID}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY matched_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	var matches []*repository.Match
	err := r.db.Select(ctx, &matches, query, args...)
	return matches, err
}

func (r *MatchRepo) ListByDonor(ctx context.Context, donorID, status string, limit, offset int) ([]*repository.Match, error) {
	query := `
        SELECT m.* FROM matches m
        JOIN food_posts fp ON m.food_post_id = fp.id
        WHERE fp.donor_id = $1
    `
	args := []interface{}{donorID}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND m.status = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY m.matched_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	var matches []*repository.Match
	err := r.db.Select(ctx, &matches, query, args...)
	return matches, err
}

func (r *MatchRepo) GetActiveByFoodPostTx(ctx context.Context, tx db.Tx, foodPostID string) (*repository.Match, error) {
	var match repository.Match
	err := tx.Get(ctx, &match, `
        SELECT * FROM matches
        WHERE food_post_id = $1 AND status NOT IN ('DELIVERED', 'EXPIRED')
        ORDER BY matched_at DESC
        LIMIT 1
        FOR UPDATE
    `, foodPostID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepo) ListActive(ctx context.Context) ([]*repository.Match, error) {
	query := `
        SELECT * FROM matches
        WHERE status IN ('MATCHED', 'ACCEPTED', 'PICKED_UP')
        ORDER BY matched_at ASC
    `
	var matches []*repository.Match
	err := r.db.Select(ctx, &matches, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active matches: %w", err)
	}
	return matches, nil
}

func (r *MatchRepo) CountRecentAccepted(ctx context.Context, orgID string, since time.Time) (int, error) {
	var count int
	err := r.db.ExecQueryRow(ctx, `
        SELECT COUNT(*) FROM matches
        WHERE org_id = $1
        AND status IN ('ACCEPTED', 'PICKED_UP', 'DELIVERED')
        AND matched_at >= $2
    `, orgID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent accepted matches: %w", err)
	}
	return count, nil
}
