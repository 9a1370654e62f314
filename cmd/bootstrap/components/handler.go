package components

import (
	"parkgate/internal/handler"
	"parkgate/internal/handler/api"
	"parkgate/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGateHandler,
		api.NewLogsHandler,
		api.NewFacilityHandler,
		api.NewContractHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
