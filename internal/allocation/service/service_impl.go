package service

import (
	"context"
	"strings"

	allocdomain "github.com/voltgrid/voltgrid/internal/allocation/domain"
	auditdomain "github.com/voltgrid/voltgrid/internal/audit/domain"
	"github.com/voltgrid/voltgrid/internal/clock"
	consumerdomain "github.com/voltgrid/voltgrid/internal/consumer/domain"
	gendomain "github.com/voltgrid/voltgrid/internal/generator/domain"
	"github.com/voltgrid/voltgrid/internal/metrics"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	ConsumerRepo consumerdomain.Repository
	GenRepo      gendomain.Repository
	Audit        auditdomain.Service
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	consumerRepo consumerdomain.Repository
	genRepo      gendomain.Repository
	audit        auditdomain.Service
}

func New(p Params) allocdomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("allocation.service"),
		clock:        p.Clock,
		consumerRepo: p.ConsumerRepo,
		genRepo:      p.GenRepo,
		audit:        p.Audit,
	}
}

func (s *Service) Allocate(ctx context.Context, consumerID, generatorID snowflake.ID, percentage float64, actorID string) (*consumerdomain.Consumer, error) {
	if percentage <= 0 || percentage > 100 {
		metrics.RecordEngineError("allocate")
		return nil, allocdomain.ErrInvalidPercentage
	}

	var entity *consumerdomain.Consumer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		consumer, err := s.consumerRepo.FindByID(ctx, tx, consumerID)
		if err != nil {
			return err
		}
		if consumer == nil {
			return allocdomain.ErrConsumerNotFound
		}

		generator, err := s.genRepo.FindByID(ctx, tx, generatorID)
		if err != nil {
			return err
		}
		if generator == nil {
			return allocdomain.ErrGeneratorNotFound
		}

		if consumer.Status == consumerdomain.StatusAllocated {
			return allocdomain.ErrAlreadyAllocated
		}

		now := s.clock.Now()
		if err := s.consumerRepo.SetAllocation(ctx, tx, consumerID, generatorID, percentage, now); err != nil {
			return err
		}

		consumer.Status = consumerdomain.StatusAllocated
		consumer.GeneratorID = &generatorID
		consumer.AllocatedPercentage = &percentage
		consumer.UpdatedAt = now
		entity = consumer
		return nil
	})
	if err != nil {
		metrics.RecordEngineError("allocate")
		return nil, err
	}

	metrics.RecordAllocation("allocate")
	targetID := consumerID.String()
	_ = s.audit.Log(ctx, auditdomain.Entry{
		ActorID:    actorPtr(actorID),
		Action:     "consumer.allocated",
		TargetType: "consumer",
		TargetID:   &targetID,
		NewValues: map[string]any{
			"generator_id":         generatorID.String(),
			"allocated_percentage": percentage,
		},
	})

	return entity, nil
}

func (s *Service) Deallocate(ctx context.Context, consumerID snowflake.ID, actorID string) (*consumerdomain.Consumer, error) {
	consumer, err := s.consumerRepo.FindByID(ctx, s.db, consumerID)
	if err != nil {
		return nil, err
	}
	if consumer == nil {
		metrics.RecordEngineError("deallocate")
		return nil, allocdomain.ErrConsumerNotFound
	}

	oldValues := map[string]any{"status": string(consumer.Status)}
	if consumer.GeneratorID != nil {
		oldValues["generator_id"] = consumer.GeneratorID.String()
	}
	if consumer.AllocatedPercentage != nil {
		oldValues["allocated_percentage"] = *consumer.AllocatedPercentage
	}

	now := s.clock.Now()
	if err := s.consumerRepo.ClearAllocation(ctx, s.db, consumerID, now); err != nil {
		return nil, err
	}

	consumer.Status = consumerdomain.StatusAvailable
	consumer.GeneratorID = nil
	consumer.AllocatedPercentage = nil
	consumer.UpdatedAt = now

	metrics.RecordAllocation("deallocate")
	targetID := consumerID.String()
	_ = s.audit.Log(ctx, auditdomain.Entry{
		ActorID:    actorPtr(actorID),
		Action:     "consumer.deallocated",
		TargetType: "consumer",
		TargetID:   &targetID,
		OldValues:  oldValues,
		NewValues:  map[string]any{"status": string(consumerdomain.StatusAvailable)},
	})

	return consumer, nil
}

func (s *Service) GeneratorCapacity(ctx context.Context, generatorID snowflake.ID) (*allocdomain.CapacityView, error) {
	generator, err := s.genRepo.FindByID(ctx, s.db, generatorID)
	if err != nil {
		return nil, err
	}
	if generator == nil {
		return nil, allocdomain.ErrGeneratorNotFound
	}

	consumers, err := s.consumerRepo.ListByGenerator(ctx, s.db, generatorID)
	if err != nil {
		return nil, err
	}

	view := allocdomain.ComputeCapacityView(*generator, consumers)
	return &view, nil
}

func actorPtr(actorID string) *string {
	actor := strings.TrimSpace(actorID)
	if actor == "" {
		return nil
	}
	return &actor
}
