package allocation

import (
	"github.com/voltgrid/voltgrid/internal/allocation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("allocation.service",
	fx.Provide(service.New),
)
