package representative

import (
	"github.com/voltgrid/voltgrid/internal/representative/repository"
	"github.com/voltgrid/voltgrid/internal/representative/service"
	"go.uber.org/fx"
)

var Module = fx.Module("representative.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
