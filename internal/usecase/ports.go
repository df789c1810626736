package usecase

import (
	"context"
	"time"

	"roomsync/internal/domain/reservation"
	"roomsync/internal/domain/user"
	"roomsync/internal/infra/wtt3"
	"roomsync/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationFilter struct {
	ReservableSlug string
	From           *time.Time
	To             *time.Time
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	FindByExternalID(ctx context.Context, externalID string) (*readmodel.ReservationRM, error)
	List(ctx context.Context, filter ReservationFilter) ([]*readmodel.ReservationListRM, error)
	FindOverlapping(ctx context.Context, id uuid.UUID) ([]*readmodel.ReservationListRM, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	// Overwrite replaces the source-derived fields (reservable, owner, slot,
	// reason) of an existing row. It never touches external_id.
	Overwrite(ctx context.Context, id uuid.UUID, res *reservation.Reservation) error
}

type ReservableReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*readmodel.ReservableRM, error)
	List(ctx context.Context) ([]*readmodel.ReservableRM, error)
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
}

// ReservationSource is the pull side of the import: some external system that
// serves paginated reservation records. The WTT3 client is the only
// implementation today.
type ReservationSource interface {
	FetchFirst(ctx context.Context, req wtt3.FetchRequest) (*wtt3.Page, error)
	FetchNext(ctx context.Context, nextURL, apiKey string) (*wtt3.Page, error)
}
