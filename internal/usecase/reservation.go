package usecase

import (
	"context"
	"errors"
	"time"

	"roomsync/internal/domain/reservation"
	"roomsync/internal/infra"
	"roomsync/internal/pkg/errs"
	"roomsync/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservableNotFound  = errors.New("reservable not found")
	ErrOwnerNotFound       = errors.New("owner not found")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrReservationConflict = errors.New("time slot conflict")
)

type CreateReservationParams struct {
	ReservableSlug string
	OwnerEmail     *string
	Start          time.Time
	End            time.Time
	Reason         string
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListReservations(ctx context.Context, filter ReservationFilter) ([]*readmodel.ReservationListRM, error)
	GetOverlapping(ctx context.Context, id uuid.UUID) ([]*readmodel.ReservationListRM, error)
}

type reservationUseCaseImpl struct {
	reservationRepo  ReservationRepository
	reservationReads ReservationReadStore
	reservableReads  ReservableReadStore
	userReads        UserReadStore
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	reservationReads ReservationReadStore,
	reservableReads ReservableReadStore,
	userReads UserReadStore,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo:  reservationRepo,
		reservationReads: reservationReads,
		reservableReads:  reservableReads,
		userReads:        userReads,
	}
}

func (u *reservationUseCaseImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error) {
	reservableRM, err := u.reservableReads.FindBySlug(ctx, params.ReservableSlug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservableNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservable")
	}

	var ownerID *uuid.UUID
	if params.OwnerEmail != nil {
		ownerRM, err := u.userReads.FindByEmail(ctx, *params.OwnerEmail)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrOwnerNotFound
			}
			return nil, errs.Wrap(err, "failed to find owner")
		}
		ownerID = &ownerRM.ID
	}

	slot, err := reservation.NewTimeSlot(params.Start, params.End)
	if err != nil {
		return nil, ErrInvalidTimeSlot
	}

	entity, err := reservation.NewReservation(reservableRM.ID, ownerID, slot, params.Reason)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build reservation")
	}

	id, err := u.reservationRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Wrap(err, "failed to create reservation")
	}

	return u.reservationReads.FindByID(ctx, id)
}

func (u *reservationUseCaseImpl) GetReservation(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, err := u.reservationReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return rm, nil
}

func (u *reservationUseCaseImpl) ListReservations(ctx context.Context, filter ReservationFilter) ([]*readmodel.ReservationListRM, error) {
	rms, err := u.reservationReads.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return rms, nil
}

func (u *reservationUseCaseImpl) GetOverlapping(ctx context.Context, id uuid.UUID) ([]*readmodel.ReservationListRM, error) {
	if _, err := u.reservationReads.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	rms, err := u.reservationReads.FindOverlapping(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find overlapping reservations")
	}
	return rms, nil
}
