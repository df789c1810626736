package components

import (
	"roomsync/internal/handler"
	"roomsync/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewReservableHandler,
		api.NewWTT3ImportHandler,
	),
	fx.Invoke(handler.NewRouter),
)
