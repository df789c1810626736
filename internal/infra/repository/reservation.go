package repository

import (
	"context"
	"errors"

	"roomsync/internal/domain/reservation"
	"roomsync/internal/infra"
	"roomsync/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Create inserts the reservation unless another reservation on the same
// reservable already covers part of the slot. Slots are half-open, so
// sharing an endpoint is not a conflict. Overwrite carries no such guard:
// an unconditional update may move a row onto an occupied slot, which is
// what FindOverlapping exists to surface.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.pool.QueryRow(ctx, `
		INSERT INTO reservations (id, external_id, reservable_id, owner_id, start_at, end_at, reason)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE reservable_id = $3
			  AND start_at < $6
			  AND end_at > $5
		)
		RETURNING id`,
		res.ID(),
		pgconv.StringPtrToPgtype(res.ExternalID()),
		res.ReservableID(),
		pgconv.UUIDPtrToPgtype(res.OwnerID()),
		res.Slot().Start(),
		res.Slot().End(),
		reasonToPgtype(res.Reason()),
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, infra.WrapRepoErr("reservation overlaps an existing slot", nil, infra.KindConflict)
	}
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

// Overwrite replaces every source-derived field of the row. external_id is
// deliberately absent from the SET list: the idempotency key of a row never
// changes after creation.
func (r *ReservationRepository) Overwrite(ctx context.Context, id uuid.UUID, res *reservation.Reservation) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reservations
		SET reservable_id = $2,
		    owner_id = $3,
		    start_at = $4,
		    end_at = $5,
		    reason = $6,
		    updated_at = now()
		WHERE id = $1`,
		id,
		res.ReservableID(),
		pgconv.UUIDPtrToPgtype(res.OwnerID()),
		res.Slot().Start(),
		res.Slot().End(),
		reasonToPgtype(res.Reason()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to overwrite reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation to overwrite does not exist", nil, infra.KindNotFound)
	}

	return nil
}

func reasonToPgtype(reason string) pgtype.Text {
	if reason == "" {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(reason)
}
