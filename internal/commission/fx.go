package commission

import (
	"github.com/voltgrid/voltgrid/internal/commission/repository"
	"github.com/voltgrid/voltgrid/internal/commission/service"
	"go.uber.org/fx"
)

var Module = fx.Module("commission.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
