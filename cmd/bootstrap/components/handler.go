package components

import (
	"flashmart/internal/handler"
	"flashmart/internal/handler/api"
	"flashmart/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewSlotHandler,
		api.NewCouponHandler,
		api.NewStockHandler,
		api.NewProductHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
