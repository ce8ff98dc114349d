package migration

import (
	auditdomain "github.com/voltgrid/voltgrid/internal/audit/domain"
	commissiondomain "github.com/voltgrid/voltgrid/internal/commission/domain"
	"github.com/voltgrid/voltgrid/internal/config"
	consumerdomain "github.com/voltgrid/voltgrid/internal/consumer/domain"
	gendomain "github.com/voltgrid/voltgrid/internal/generator/domain"
	repdomain "github.com/voltgrid/voltgrid/internal/representative/domain"
	"github.com/voltgrid/voltgrid/internal/seed"
	settingdomain "github.com/voltgrid/voltgrid/internal/setting/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, tariff *config.TariffConfigHolder) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := conn.AutoMigrate(
				&repdomain.Representative{},
				&gendomain.Generator{},
				&consumerdomain.Consumer{},
				&commissiondomain.Commission{},
				&settingdomain.SystemSetting{},
				&auditdomain.AuditLog{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDefaults {
			t := tariff.Get()
			return seed.EnsureKwhPrice(conn, t.KwhPriceSettingKey, t.DefaultKwhPrice)
		}
		return nil
	}),
)
