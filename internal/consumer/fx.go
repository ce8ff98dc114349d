package consumer

import (
	"github.com/voltgrid/voltgrid/internal/consumer/repository"
	"github.com/voltgrid/voltgrid/internal/consumer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("consumer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
