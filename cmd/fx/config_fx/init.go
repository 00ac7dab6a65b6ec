package config_fx

import (
	"go.uber.org/fx"
	"travelhelper/internal/config"
)

var Module = fx.Provide(config.Load)
