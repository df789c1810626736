package components

import (
	"log/slog"

	"roomsync/internal/pkg/config"
	"roomsync/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewReservationUseCase,
		usecase.NewReservableUseCase,
		NewWTT3ImportUseCase,
	),
)

func NewWTT3ImportUseCase(
	source usecase.ReservationSource,
	reservationRepo usecase.ReservationRepository,
	reservationReads usecase.ReservationReadStore,
	reservableReads usecase.ReservableReadStore,
	userReads usecase.UserReadStore,
	userRepo usecase.UserRepository,
	cfg config.Config,
	logger *slog.Logger,
) usecase.WTT3ImportUseCase {
	return usecase.NewWTT3ImportUseCase(
		source,
		reservationRepo,
		reservationReads,
		reservableReads,
		userReads,
		userRepo,
		cfg.WTT3,
		logger,
	)
}
