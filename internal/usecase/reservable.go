package usecase

import (
	"context"

	"roomsync/internal/infra"
	"roomsync/internal/pkg/errs"
	"roomsync/internal/usecase/readmodel"
)

type ReservableUseCase interface {
	ListReservables(ctx context.Context) ([]*readmodel.ReservableRM, error)
	GetReservable(ctx context.Context, slug string) (*readmodel.ReservableRM, error)
}

type reservableUseCaseImpl struct {
	reservableReads ReservableReadStore
}

func NewReservableUseCase(reservableReads ReservableReadStore) ReservableUseCase {
	return &reservableUseCaseImpl{reservableReads: reservableReads}
}

func (u *reservableUseCaseImpl) ListReservables(ctx context.Context) ([]*readmodel.ReservableRM, error) {
	rms, err := u.reservableReads.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservables")
	}
	return rms, nil
}

func (u *reservableUseCaseImpl) GetReservable(ctx context.Context, slug string) (*readmodel.ReservableRM, error) {
	rm, err := u.reservableReads.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservableNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservable")
	}
	return rm, nil
}
