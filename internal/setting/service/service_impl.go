package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/voltgrid/voltgrid/internal/audit/domain"
	"github.com/voltgrid/voltgrid/internal/cache"
	"github.com/voltgrid/voltgrid/internal/clock"
	"github.com/voltgrid/voltgrid/internal/config"
	settingdomain "github.com/voltgrid/voltgrid/internal/setting/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const priceCacheTTL = 30 * time.Second

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Tariff *config.TariffConfigHolder
	Repo   settingdomain.Repository
	Audit  auditdomain.Service
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clock  clock.Clock
	tariff *config.TariffConfigHolder
	repo   settingdomain.Repository
	audit  auditdomain.Service
	prices cache.Cache[string, float64]
}

func New(p Params) settingdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("setting.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		tariff: p.Tariff,
		repo:   p.Repo,
		audit:  p.Audit,
		prices: cache.NewTTLCache[string, float64](),
	}
}

// CurrentKwhPrice returns the active KWH_PRICE value, falling back to the
// configured default when the row is missing or unparsable.
func (s *Service) CurrentKwhPrice(ctx context.Context) float64 {
	key := s.priceKey()
	if cached, ok := s.prices.Get(key); ok {
		return cached
	}

	fallback := s.tariff.Get().DefaultKwhPrice

	setting, err := s.repo.FindActive(ctx, s.db, key)
	if err != nil {
		s.log.Warn("failed to load kwh price, using default", zap.Error(err))
		return fallback
	}
	if setting == nil {
		return fallback
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(setting.Value), 64)
	if err != nil || value <= 0 {
		s.log.Warn("invalid kwh price value, using default", zap.String("value", setting.Value))
		return fallback
	}

	s.prices.Set(key, value, priceCacheTTL)
	return value
}

func (s *Service) UpdateKwhPrice(ctx context.Context, value float64, actorID string) (*settingdomain.SystemSetting, error) {
	if value <= 0 {
		return nil, settingdomain.ErrInvalidPrice
	}

	key := s.priceKey()
	now := s.clock.Now()
	entity := &settingdomain.SystemSetting{
		ID:        s.genID.Generate(),
		Key:       key,
		Value:     strconv.FormatFloat(value, 'f', -1, 64),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var previous *settingdomain.SystemSetting
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		previous, err = s.repo.FindActive(ctx, tx, key)
		if err != nil {
			return err
		}
		if err := s.repo.Deactivate(ctx, tx, key, now); err != nil {
			return err
		}
		return s.repo.Insert(ctx, tx, entity)
	})
	if err != nil {
		return nil, err
	}

	s.prices.Delete(key)

	oldValues := map[string]any{}
	if previous != nil {
		oldValues["value"] = previous.Value
	}
	actor := strings.TrimSpace(actorID)
	var actorPtr *string
	if actor != "" {
		actorPtr = &actor
	}
	targetID := entity.ID.String()
	_ = s.audit.Log(ctx, auditdomain.Entry{
		ActorID:    actorPtr,
		Action:     "setting.kwh_price.updated",
		TargetType: "system_setting",
		TargetID:   &targetID,
		OldValues:  oldValues,
		NewValues:  map[string]any{"value": entity.Value},
	})

	return entity, nil
}

func (s *Service) History(ctx context.Context, key string) ([]settingdomain.SystemSetting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, settingdomain.ErrInvalidKey
	}
	return s.repo.History(ctx, s.db, key)
}

func (s *Service) priceKey() string {
	key := strings.TrimSpace(s.tariff.Get().KwhPriceSettingKey)
	if key == "" {
		key = settingdomain.KeyKwhPrice
	}
	return key
}
