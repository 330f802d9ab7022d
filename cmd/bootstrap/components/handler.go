package components

import (
	"salonbook/internal/handler"
	"salonbook/internal/handler/api"
	"salonbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReviewHandler,
		api.NewModerationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
