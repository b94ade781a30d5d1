package bootstrap

import (
	"flashmart/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.InventoryConfig {
			return cfg.Inventory
		},
	),
)
