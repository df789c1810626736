package readstore

import (
	"context"

	"roomsync/internal/infra"
	"roomsync/internal/pkg/pgconv"
	"roomsync/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservableReadStore struct {
	pool *pgxpool.Pool
}

func NewReservableReadStore(pool *pgxpool.Pool) *ReservableReadStore {
	return &ReservableReadStore{pool: pool}
}

func (s *ReservableReadStore) FindBySlug(ctx context.Context, slug string) (*readmodel.ReservableRM, error) {
	var rm readmodel.ReservableRM

	err := s.pool.QueryRow(ctx,
		`SELECT id, slug, name, kind FROM reservables WHERE slug = $1`, slug,
	).Scan(&rm.ID, &rm.Slug, &rm.Name, &rm.Kind)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservable not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservable by slug", err)
	}

	return &rm, nil
}

func (s *ReservableReadStore) List(ctx context.Context) ([]*readmodel.ReservableRM, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, slug, name, kind FROM reservables ORDER BY slug`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservables", err)
	}
	defer rows.Close()

	result := []*readmodel.ReservableRM{}
	for rows.Next() {
		var rm readmodel.ReservableRM
		if err := rows.Scan(&rm.ID, &rm.Slug, &rm.Name, &rm.Kind); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservable row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservable rows", err)
	}
	return result, nil
}
