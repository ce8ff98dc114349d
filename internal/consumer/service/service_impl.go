package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/voltgrid/voltgrid/internal/audit/domain"
	"github.com/voltgrid/voltgrid/internal/clock"
	consumerdomain "github.com/voltgrid/voltgrid/internal/consumer/domain"
	repdomain "github.com/voltgrid/voltgrid/internal/representative/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    consumerdomain.Repository
	RepRepo repdomain.Repository
	Audit   auditdomain.Service
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    consumerdomain.Repository
	repRepo repdomain.Repository
	audit   auditdomain.Service
}

func New(p Params) consumerdomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("consumer.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		repRepo: p.RepRepo,
		audit:   p.Audit,
	}
}

func (s *Service) Create(ctx context.Context, req consumerdomain.CreateRequest) (*consumerdomain.Consumer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, consumerdomain.ErrInvalidName
	}
	if req.AverageMonthlyConsumption < 0 {
		return nil, consumerdomain.ErrInvalidConsumption
	}

	if req.RepresentativeID != nil {
		rep, err := s.repRepo.FindByID(ctx, s.db, *req.RepresentativeID)
		if err != nil {
			return nil, err
		}
		if rep == nil {
			return nil, consumerdomain.ErrRepresentativeNotFound
		}
	}

	now := s.clock.Now()
	entity := &consumerdomain.Consumer{
		ID:                        s.genID.Generate(),
		Name:                      name,
		Document:                  strings.TrimSpace(req.Document),
		AverageMonthlyConsumption: req.AverageMonthlyConsumption,
		Status:                    consumerdomain.StatusAvailable,
		RepresentativeID:          req.RepresentativeID,
		ApprovalStatus:            consumerdomain.ApprovalPending,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*consumerdomain.Consumer, error) {
	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, consumerdomain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, filter consumerdomain.ListFilter) ([]consumerdomain.Consumer, error) {
	return s.repo.List(ctx, s.db, filter)
}

// Approve marks a pending consumer APPROVED. Commission creation is a separate
// step owned by the commission engine.
func (s *Service) Approve(ctx context.Context, id snowflake.ID, actorID string) (*consumerdomain.Consumer, error) {
	return s.review(ctx, id, consumerdomain.ApprovalApproved, actorID)
}

func (s *Service) Reject(ctx context.Context, id snowflake.ID, actorID string) (*consumerdomain.Consumer, error) {
	return s.review(ctx, id, consumerdomain.ApprovalRejected, actorID)
}

func (s *Service) review(ctx context.Context, id snowflake.ID, decision consumerdomain.ApprovalStatus, actorID string) (*consumerdomain.Consumer, error) {
	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, consumerdomain.ErrNotFound
	}
	if entity.ApprovalStatus != consumerdomain.ApprovalPending {
		return nil, consumerdomain.ErrAlreadyReviewed
	}

	now := s.clock.Now()
	if err := s.repo.UpdateApproval(ctx, s.db, id, decision, now); err != nil {
		return nil, err
	}
	previous := entity.ApprovalStatus
	entity.ApprovalStatus = decision
	entity.UpdatedAt = now

	actor := strings.TrimSpace(actorID)
	var actorPtr *string
	if actor != "" {
		actorPtr = &actor
	}
	targetID := id.String()
	_ = s.audit.Log(ctx, auditdomain.Entry{
		ActorID:    actorPtr,
		Action:     "consumer.approval.updated",
		TargetType: "consumer",
		TargetID:   &targetID,
		OldValues:  map[string]any{"approval_status": string(previous)},
		NewValues:  map[string]any{"approval_status": string(decision)},
	})

	return entity, nil
}

// UpdateStatus moves a consumer through the sales funnel (IN_PROCESS,
// CONVERTED, back to AVAILABLE). ALLOCATED is owned by the allocation engine
// and cannot be entered or left here.
func (s *Service) UpdateStatus(ctx context.Context, id snowflake.ID, status consumerdomain.ConsumerStatus) (*consumerdomain.Consumer, error) {
	parsed, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	if parsed == consumerdomain.StatusAllocated {
		return nil, consumerdomain.ErrAllocationManaged
	}

	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, consumerdomain.ErrNotFound
	}
	if entity.Status == consumerdomain.StatusAllocated {
		return nil, consumerdomain.ErrAllocationManaged
	}

	now := s.clock.Now()
	if err := s.repo.UpdateStatus(ctx, s.db, id, parsed, now); err != nil {
		return nil, err
	}
	entity.Status = parsed
	entity.UpdatedAt = now
	return entity, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if entity == nil {
		return consumerdomain.ErrNotFound
	}
	if entity.Status == consumerdomain.StatusAllocated {
		return consumerdomain.ErrAllocated
	}
	return s.repo.Delete(ctx, s.db, id)
}

func parseStatus(value consumerdomain.ConsumerStatus) (consumerdomain.ConsumerStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(string(value))) {
	case string(consumerdomain.StatusAvailable):
		return consumerdomain.StatusAvailable, nil
	case string(consumerdomain.StatusAllocated):
		return consumerdomain.StatusAllocated, nil
	case string(consumerdomain.StatusInProcess):
		return consumerdomain.StatusInProcess, nil
	case string(consumerdomain.StatusConverted):
		return consumerdomain.StatusConverted, nil
	default:
		return "", consumerdomain.ErrInvalidStatus
	}
}
