package audit

import (
	"github.com/voltgrid/voltgrid/internal/audit/repository"
	"github.com/voltgrid/voltgrid/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
