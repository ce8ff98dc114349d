package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/voltgrid/voltgrid/internal/audit/domain"
	"github.com/voltgrid/voltgrid/internal/clock"
	gendomain "github.com/voltgrid/voltgrid/internal/generator/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  gendomain.Repository
	Audit auditdomain.Service
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  gendomain.Repository
	audit auditdomain.Service
}

func New(p Params) gendomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("generator.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
		audit: p.Audit,
	}
}

func (s *Service) Create(ctx context.Context, req gendomain.CreateRequest) (*gendomain.Generator, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, gendomain.ErrInvalidName
	}
	if req.InstalledPower < 0 {
		return nil, gendomain.ErrInvalidInstalledPower
	}
	sourceType, err := parseSourceType(req.SourceType)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	entity := &gendomain.Generator{
		ID:             s.genID.Generate(),
		Name:           name,
		InstalledPower: req.InstalledPower,
		Status:         gendomain.StatusUnderAnalysis,
		SourceType:     sourceType,
		City:           strings.TrimSpace(req.City),
		State:          strings.TrimSpace(req.State),
		OwnerDocument:  strings.TrimSpace(req.OwnerDocument),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*gendomain.Generator, error) {
	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, gendomain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, filter gendomain.ListFilter) ([]gendomain.Generator, error) {
	if filter.Status != "" {
		if _, err := parseStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, s.db, filter)
}

// UpdateStatus applies externally driven transitions; any status may move to
// any other.
func (s *Service) UpdateStatus(ctx context.Context, id snowflake.ID, status gendomain.GeneratorStatus, actorID string) (*gendomain.Generator, error) {
	parsed, err := parseStatus(status)
	if err != nil {
		return nil, err
	}

	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, gendomain.ErrNotFound
	}

	previous := entity.Status
	now := s.clock.Now()
	if err := s.repo.UpdateStatus(ctx, s.db, id, parsed, now); err != nil {
		return nil, err
	}
	entity.Status = parsed
	entity.UpdatedAt = now

	actor := strings.TrimSpace(actorID)
	var actorPtr *string
	if actor != "" {
		actorPtr = &actor
	}
	targetID := id.String()
	_ = s.audit.Log(ctx, auditdomain.Entry{
		ActorID:    actorPtr,
		Action:     "generator.status.updated",
		TargetType: "generator",
		TargetID:   &targetID,
		OldValues:  map[string]any{"status": string(previous)},
		NewValues:  map[string]any{"status": string(parsed)},
	})

	return entity, nil
}

// Delete removes a generator only when no consumer references it.
func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entity, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if entity == nil {
			return gendomain.ErrNotFound
		}

		count, err := s.repo.CountConsumers(ctx, tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return gendomain.ErrHasConsumers
		}

		return s.repo.Delete(ctx, tx, id)
	})
}

func parseStatus(value gendomain.GeneratorStatus) (gendomain.GeneratorStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(string(value))) {
	case string(gendomain.StatusUnderAnalysis):
		return gendomain.StatusUnderAnalysis, nil
	case string(gendomain.StatusAwaitingAllocation):
		return gendomain.StatusAwaitingAllocation, nil
	case string(gendomain.StatusActive):
		return gendomain.StatusActive, nil
	case string(gendomain.StatusInactive):
		return gendomain.StatusInactive, nil
	default:
		return "", gendomain.ErrInvalidStatus
	}
}

func parseSourceType(value gendomain.SourceType) (gendomain.SourceType, error) {
	switch strings.ToUpper(strings.TrimSpace(string(value))) {
	case string(gendomain.SourceSolar):
		return gendomain.SourceSolar, nil
	case string(gendomain.SourceWind):
		return gendomain.SourceWind, nil
	case string(gendomain.SourceHydro):
		return gendomain.SourceHydro, nil
	case string(gendomain.SourceBiomass):
		return gendomain.SourceBiomass, nil
	default:
		return "", gendomain.ErrInvalidSourceType
	}
}
