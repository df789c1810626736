package readstore

import (
	"context"

	"roomsync/internal/infra"
	"roomsync/internal/pkg/pgconv"
	"roomsync/internal/usecase"
	"roomsync/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationDetailQuery = `
	SELECT r.id, r.external_id, r.reservable_id, v.slug, v.name,
	       r.owner_id, u.email, r.start_at, r.end_at, r.reason,
	       r.created_at, r.updated_at
	FROM reservations r
	JOIN reservables v ON v.id = r.reservable_id
	LEFT JOIN users u ON u.id = r.owner_id
`

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	row := s.pool.QueryRow(ctx, reservationDetailQuery+` WHERE r.id = $1`, id)

	rm, err := scanReservationRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rm, nil
}

func (s *ReservationReadStore) FindByExternalID(ctx context.Context, externalID string) (*readmodel.ReservationRM, error) {
	row := s.pool.QueryRow(ctx, reservationDetailQuery+` WHERE r.external_id = $1`, externalID)

	rm, err := scanReservationRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by external ID", err)
	}
	return rm, nil
}

func (s *ReservationReadStore) List(ctx context.Context, filter usecase.ReservationFilter) ([]*readmodel.ReservationListRM, error) {
	query := `
		SELECT r.id, r.external_id, v.slug, r.start_at, r.end_at, r.reason
		FROM reservations r
		JOIN reservables v ON v.id = r.reservable_id
		WHERE ($1::text IS NULL OR v.slug = $1)
		  AND ($2::timestamptz IS NULL OR r.end_at > $2)
		  AND ($3::timestamptz IS NULL OR r.start_at < $3)
		ORDER BY r.start_at, r.id`

	var slug pgtype.Text
	if filter.ReservableSlug != "" {
		slug = pgconv.StringToPgtype(filter.ReservableSlug)
	}

	rows, err := s.pool.Query(ctx, query,
		slug,
		pgconv.TimePtrToPgtype(filter.From),
		pgconv.TimePtrToPgtype(filter.To),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return collectReservationListRMs(rows)
}

func (s *ReservationReadStore) FindOverlapping(ctx context.Context, id uuid.UUID) ([]*readmodel.ReservationListRM, error) {
	query := `
		SELECT o.id, o.external_id, v.slug, o.start_at, o.end_at, o.reason
		FROM reservations r
		JOIN reservations o ON o.reservable_id = r.reservable_id
		  AND o.id <> r.id
		  AND o.start_at < r.end_at
		  AND o.end_at > r.start_at
		JOIN reservables v ON v.id = o.reservable_id
		WHERE r.id = $1
		ORDER BY o.start_at, o.id`

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping reservations", err)
	}
	defer rows.Close()

	return collectReservationListRMs(rows)
}

func scanReservationRM(row pgx.Row) (*readmodel.ReservationRM, error) {
	var (
		rm         readmodel.ReservationRM
		externalID pgtype.Text
		ownerID    pgtype.UUID
		ownerEmail pgtype.Text
		reason     pgtype.Text
	)

	err := row.Scan(
		&rm.ID, &externalID, &rm.ReservableID, &rm.ReservableSlug, &rm.ReservableName,
		&ownerID, &ownerEmail, &rm.Start, &rm.End, &reason,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.ExternalID = pgconv.StringPtrFromPgtype(externalID)
	rm.OwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	rm.OwnerEmail = pgconv.StringPtrFromPgtype(ownerEmail)
	rm.Reason = pgconv.StringPtrFromPgtype(reason)
	return &rm, nil
}

func collectReservationListRMs(rows pgx.Rows) ([]*readmodel.ReservationListRM, error) {
	result := []*readmodel.ReservationListRM{}
	for rows.Next() {
		var (
			rm         readmodel.ReservationListRM
			externalID pgtype.Text
			reason     pgtype.Text
		)
		if err := rows.Scan(&rm.ID, &externalID, &rm.ReservableSlug, &rm.Start, &rm.End, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		rm.ExternalID = pgconv.StringPtrFromPgtype(externalID)
		rm.Reason = pgconv.StringPtrFromPgtype(reason)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}
