package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// TariffConfig carries the commission business parameters. The defaults encode
// the production formula: 86.5% of the gross energy value, split evenly between
// the platform and the representative.
type TariffConfig struct {
	CommissionRate     float64
	CommissionSplit    float64
	DefaultKwhPrice    float64
	KwhPriceSettingKey string
}

func DefaultTariffConfig() TariffConfig {
	return TariffConfig{
		CommissionRate:     0.865,
		CommissionSplit:    2,
		DefaultKwhPrice:    0.90,
		KwhPriceSettingKey: "KWH_PRICE",
	}
}

type TariffConfigHolder struct {
	current atomic.Value // holds TariffConfig
}

func NewTariffConfigHolder() (*TariffConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("tariff")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/voltgrid/config") // Volume-mounted config
	v.AddConfigPath("/etc/voltgrid")            // System config
	v.AddConfigPath(".")                        // Current directory (dev mode)

	v.SetEnvPrefix("VOLTGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultTariffConfig()
	v.SetDefault("tariff.commissionRate", defaults.CommissionRate)
	v.SetDefault("tariff.commissionSplit", defaults.CommissionSplit)
	v.SetDefault("tariff.defaultKwhPrice", defaults.DefaultKwhPrice)
	v.SetDefault("tariff.kwhPriceSettingKey", defaults.KwhPriceSettingKey)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Leaf reads so VOLTGRID_TARIFF_* env overrides apply; UnmarshalKey
	// does not consult AutomaticEnv.
	cfg := readTariffConfig(v)
	if err := validateTariffConfig(cfg); err != nil {
		return nil, err
	}

	holder := &TariffConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated := readTariffConfig(v)
		if err := validateTariffConfig(updated); err != nil {
			log.Printf("[tariff-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[tariff-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func readTariffConfig(v *viper.Viper) TariffConfig {
	return TariffConfig{
		CommissionRate:     v.GetFloat64("tariff.commissionRate"),
		CommissionSplit:    v.GetFloat64("tariff.commissionSplit"),
		DefaultKwhPrice:    v.GetFloat64("tariff.defaultKwhPrice"),
		KwhPriceSettingKey: v.GetString("tariff.kwhPriceSettingKey"),
	}
}

// NewStaticTariffConfigHolder returns a holder pinned to the given config.
// Used by tests and embedded callers that bypass file watching.
func NewStaticTariffConfigHolder(cfg TariffConfig) *TariffConfigHolder {
	holder := &TariffConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *TariffConfigHolder) Get() TariffConfig {
	return h.current.Load().(TariffConfig)
}

func validateTariffConfig(cfg TariffConfig) error {
	if cfg.CommissionRate <= 0 || cfg.CommissionRate > 1 {
		return errors.New("tariff.commissionRate must be in (0, 1]")
	}
	if cfg.CommissionSplit <= 0 {
		return errors.New("tariff.commissionSplit must be positive")
	}
	if cfg.DefaultKwhPrice <= 0 {
		return errors.New("tariff.defaultKwhPrice must be positive")
	}
	if strings.TrimSpace(cfg.KwhPriceSettingKey) == "" {
		return errors.New("tariff.kwhPriceSettingKey cannot be empty")
	}
	return nil
}
