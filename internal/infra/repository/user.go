package repository

import (
	"context"

	"roomsync/internal/domain/user"
	"roomsync/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, display_name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		u.ID(), u.Email(), u.DisplayName(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}
