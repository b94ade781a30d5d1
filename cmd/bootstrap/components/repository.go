package components

import (
	"flashmart/internal/infra/cache"
	"flashmart/internal/infra/readstore"
	repo_impl "flashmart/internal/infra/repository"
	"flashmart/internal/infra/uow"
	"flashmart/internal/usecase"
	"flashmart/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			func(c *cache.Client) *cache.Client { return c },
			fx.As(new(usecase.CounterCache)),
		),
		fx.Annotate(
			repo_impl.NewStockRepository,
			fx.As(new(usecase.StockRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			repo_impl.NewSlotRepository,
			fx.As(new(usecase.SlotRepository)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(usecase.CouponRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotQueries)),
		),
	),
)
