package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/foodbridge/foodbridge/internal/db"
	"github.com/foodbridge/foodbridge/internal/repository"
)

type OrgRepo struct {
	db db.DB
}

func NewOrgRepo(db db.DB) *OrgRepo {
	return &OrgRepo{db: db}
}

func (r *OrgRepo) Create(ctx context.Context, org *repository.Org) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orgs (id, name, verified, daily_capacity, used_capacity, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, org.ID, org.Name, org.Verified, org.DailyCapacity, org.UsedCapacity, org.CreatedAt, org.UpdatedAt)
	return err
}

func (r *OrgRepo) GetByID(ctx context.Context, id string) (*repository.Org, error) {
	var org repository.Org
	err := r.db.Get(ctx, &org, "SELECT * FROM orgs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrgRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Org, error) {
	var org repository.Org
	err := tx.Get(ctx, &org, "SELECT * FROM orgs WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrgRepo) UpdateUsedCapacityTx(ctx context.Context, tx db.Tx, org *repository.Org) error {
	_, err := tx.Exec(ctx, `
        UPDATE orgs
        SET used_capacity = $1, updated_at = $2
        WHERE id = $3
    `, org.UsedCapacity, org.UpdatedAt, org.ID)
	return err
}

func (r *OrgRepo) ListVerified(ctx context.Context) ([]*repository.Org, error) {
	query := `
        SELECT * FROM orgs
        WHERE verified = true AND daily_capacity - used_capacity > 0
        ORDER BY name ASC
    `
	var orgs []*repository.Org
	err := r.db.Select(ctx, &orgs, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list verified orgs: %w", err)
	}
	return orgs, nil
}
