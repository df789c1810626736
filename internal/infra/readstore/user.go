package readstore

import (
	"context"

	"roomsync/internal/infra"
	"roomsync/internal/pkg/pgconv"
	"roomsync/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error) {
	var rm readmodel.UserRM

	err := s.pool.QueryRow(ctx,
		`SELECT id, email, display_name, is_active FROM users WHERE email = $1`, email,
	).Scan(&rm.ID, &rm.Email, &rm.DisplayName, &rm.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &rm, nil
}
