package setting

import (
	settingdomain "github.com/voltgrid/voltgrid/internal/setting/domain"
	"github.com/voltgrid/voltgrid/internal/setting/repository"
	"github.com/voltgrid/voltgrid/internal/setting/service"
	"go.uber.org/fx"
)

var Module = fx.Module("setting.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(func(svc settingdomain.Service) settingdomain.PriceProvider { return svc }),
)
