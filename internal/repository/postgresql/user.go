package postgresql

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/foodbridge/foodbridge/internal/db"
	"github.com/foodbridge/foodbridge/internal/metrics"
)

type UserRepo struct {
	db db.DB
}

type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     string `db:"role"`
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, username, password, role string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO users (username, password, role) VALUES ($1, $2, $3)",
		username, string(hashedPassword), role)
	return err
}

func (r *UserRepo) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	var hashedPassword string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM users WHERE username = $1", username).Scan(&hashedPassword)
	if err != nil {
		return false, errors.New("user not found")
	}

	err = bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		metrics.AuthFailuresTotal.Inc()
		return false, nil
	}

	return true, nil
}

func (r *UserRepo) GetRole(ctx context.Context, username string) (string, error) {
	var role string
	err := r.db.ExecQueryRow(ctx,
		"SELECT role FROM users WHERE username = $1", username).Scan(&role)
	if err != nil {
		return "", errors.New("user not found")
	}
	return role, nil
}
