package components

import (
	"flashmart/internal/pkg/clock"
	"flashmart/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewStockUseCase,
		usecase.NewCouponUseCase,
		usecase.NewSlotUseCase,
		usecase.NewOrderUseCase,
		usecase.NewProductUseCase,
	),
)
