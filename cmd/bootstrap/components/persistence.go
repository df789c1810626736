package components

import (
	"log/slog"

	"roomsync/internal/infra/readstore"
	"roomsync/internal/infra/repository"
	"roomsync/internal/infra/wtt3"
	"roomsync/internal/pkg/config"
	"roomsync/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(usecase.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewReservableReadStore,
			fx.As(new(usecase.ReservableReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
		),
		// Write side
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		// External source
		fx.Annotate(
			NewWTT3Client,
			fx.As(new(usecase.ReservationSource)),
		),
	),
)

func NewWTT3Client(cfg config.Config, logger *slog.Logger) *wtt3.Client {
	return wtt3.NewClient(cfg.WTT3, logger)
}
