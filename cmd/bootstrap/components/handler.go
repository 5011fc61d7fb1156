package components

import (
	"learnscape-checkout/internal/handler"
	"learnscape-checkout/internal/handler/api"
	"learnscape-checkout/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
