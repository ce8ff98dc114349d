package generator

import (
	"github.com/voltgrid/voltgrid/internal/generator/repository"
	"github.com/voltgrid/voltgrid/internal/generator/service"
	"go.uber.org/fx"
)

var Module = fx.Module("generator.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
