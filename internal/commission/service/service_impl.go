package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/voltgrid/voltgrid/internal/audit/domain"
	"github.com/voltgrid/voltgrid/internal/clock"
	commissiondomain "github.com/voltgrid/voltgrid/internal/commission/domain"
	"github.com/voltgrid/voltgrid/internal/config"
	consumerdomain "github.com/voltgrid/voltgrid/internal/consumer/domain"
	"github.com/voltgrid/voltgrid/internal/metrics"
	storagedomain "github.com/voltgrid/voltgrid/internal/providers/storage/domain"
	settingdomain "github.com/voltgrid/voltgrid/internal/setting/domain"
	"github.com/voltgrid/voltgrid/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const trailingMonths = 6

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Tariff       *config.TariffConfigHolder
	Repo         commissiondomain.Repository
	ConsumerRepo consumerdomain.Repository
	Price        settingdomain.PriceProvider
	Audit        auditdomain.Service
	Storage      storagedomain.Provider
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	tariff       *config.TariffConfigHolder
	repo         commissiondomain.Repository
	consumerRepo consumerdomain.Repository
	price        settingdomain.PriceProvider
	audit        auditdomain.Service
	storage      storagedomain.Provider
}

func New(p Params) commissiondomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("commission.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		tariff:       p.Tariff,
		repo:         p.Repo,
		consumerRepo: p.ConsumerRepo,
		price:        p.Price,
		audit:        p.Audit,
		storage:      p.Storage,
	}
}

func (s *Service) CreateForApprovedConsumer(ctx context.Context, consumerID snowflake.ID, actorID string) (*commissiondomain.Commission, error) {
	consumer, err := s.consumerRepo.FindByID(ctx, s.db, consumerID)
	if err != nil {
		return nil, err
	}
	if consumer == nil {
		metrics.RecordEngineError("commission.create")
		return nil, commissiondomain.ErrConsumerNotFound
	}
	if consumer.RepresentativeID == nil {
		metrics.RecordEngineError("commission.create")
		return nil, commissiondomain.ErrNoRepresentative
	}
	if consumer.ApprovalStatus != consumerdomain.ApprovalApproved {
		metrics.RecordEngineError("commission.create")
		return nil, commissiondomain.ErrConsumerNotApproved
	}

	representativeID := *consumer.RepresentativeID
	existing, err := s.repo.FindByPair(ctx, s.db, consumerID, representativeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.RecordEngineError("commission.create")
		return nil, commissiondomain.ErrCommissionExists
	}

	tariff := s.tariff.Get()
	kwhPrice := s.price.CurrentKwhPrice(ctx)
	now := s.clock.Now()

	entity := &commissiondomain.Commission{
		ID:               s.genID.Generate(),
		RepresentativeID: representativeID,
		ConsumerID:       consumerID,
		KwhConsumption:   consumer.AverageMonthlyConsumption,
		KwhPrice:         kwhPrice,
		CommissionValue:  commissiondomain.Calculate(consumer.AverageMonthlyConsumption, kwhPrice, tariff.CommissionRate, tariff.CommissionSplit),
		Status:           commissiondomain.StatusCalculated,
		CalculatedAt:     now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		// The unique index on (consumer_id, representative_id) closes the
		// race between two concurrent precondition checks.
		if db.IsDuplicateKeyErr(err) {
			metrics.RecordEngineError("commission.create")
			return nil, commissiondomain.ErrCommissionExists
		}
		return nil, err
	}

	metrics.RecordCommissionCalculated(representativeID.String())
	targetID := entity.ID.String()
	_ = s.audit.Log(ctx, auditdomain.Entry{
		ActorID:    actorPtr(actorID),
		Action:     "commission.calculated",
		TargetType: "commission",
		TargetID:   &targetID,
		NewValues: map[string]any{
			"consumer_id":       consumerID.String(),
			"representative_id": representativeID.String(),
			"kwh_consumption":   entity.KwhConsumption,
			"kwh_price":         entity.KwhPrice,
			"commission_value":  entity.CommissionValue,
			"status":            string(entity.Status),
		},
	})

	return entity, nil
}

func (s *Service) MarkAsPaid(ctx context.Context, commissionID snowflake.ID, actorID string) (*commissiondomain.Commission, error) {
	entity, err := s.repo.FindByID(ctx, s.db, commissionID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		metrics.RecordEngineError("commission.pay")
		return nil, commissiondomain.ErrNotFound
	}

	paidAt := s.clock.Now()
	// Conditional update: only a non-PAID row flips, so a concurrent second
	// submission loses and surfaces as ErrAlreadyPaid instead of silently
	// rewriting paid_at.
	updated, err := s.repo.MarkPaid(ctx, s.db, commissionID, paidAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		metrics.RecordEngineError("commission.pay")
		return nil, commissiondomain.ErrAlreadyPaid
	}

	previousStatus := entity.Status
	entity.Status = commissiondomain.StatusPaid
	entity.PaidAt = &paidAt
	entity.UpdatedAt = paidAt

	metrics.RecordCommissionPaid()
	targetID := commissionID.String()
	_ = s.audit.Log(ctx, auditdomain.Entry{
		ActorID:    actorPtr(actorID),
		Action:     "commission.paid",
		TargetType: "commission",
		TargetID:   &targetID,
		OldValues:  map[string]any{"status": string(previousStatus)},
		NewValues: map[string]any{
			"status":  string(commissiondomain.StatusPaid),
			"paid_at": paidAt.Format(time.RFC3339),
		},
	})

	return entity, nil
}

func (s *Service) AttachPaymentProof(ctx context.Context, commissionID snowflake.ID, fileName string, content []byte) (*commissiondomain.Commission, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, commissiondomain.ErrInvalidFileName
	}

	entity, err := s.repo.FindByID(ctx, s.db, commissionID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, commissiondomain.ErrNotFound
	}
	if entity.Status != commissiondomain.StatusPaid {
		return nil, commissiondomain.ErrNotPaid
	}

	result, err := s.storage.Upload(ctx, fileName, content)
	if err != nil {
		return nil, err
	}

	uploadedAt := s.clock.Now()
	if err := s.repo.SetPaymentProof(ctx, s.db, commissionID, result.URL, fileName, uploadedAt); err != nil {
		return nil, err
	}

	entity.PaymentProofURL = &result.URL
	entity.PaymentProofFileName = &fileName
	entity.PaymentProofUploadedAt = &uploadedAt
	entity.UpdatedAt = uploadedAt
	return entity, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*commissiondomain.Commission, error) {
	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, commissiondomain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) ListByRepresentative(ctx context.Context, representativeID snowflake.ID) ([]commissiondomain.Commission, error) {
	return s.repo.ListByRepresentative(ctx, s.db, representativeID)
}

// Totals returns one row per status with zero-filled counts and sums for
// statuses that have no commissions yet.
func (s *Service) Totals(ctx context.Context, representativeID *snowflake.ID) ([]commissiondomain.StatusTotal, error) {
	rows, err := s.repo.TotalsByStatus(ctx, s.db, representativeID)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[commissiondomain.CommissionStatus]commissiondomain.StatusTotal, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row
	}

	statuses := []commissiondomain.CommissionStatus{
		commissiondomain.StatusPending,
		commissiondomain.StatusCalculated,
		commissiondomain.StatusPaid,
		commissiondomain.StatusCancelled,
	}
	totals := make([]commissiondomain.StatusTotal, 0, len(statuses))
	for _, status := range statuses {
		if row, ok := byStatus[status]; ok {
			totals = append(totals, row)
			continue
		}
		totals = append(totals, commissiondomain.StatusTotal{Status: status})
	}
	return totals, nil
}

// MonthlyBreakdown walks the trailing six calendar months, oldest first, each
// bucket bounded by [first instant, last instant] of the month.
func (s *Service) MonthlyBreakdown(ctx context.Context, representativeID *snowflake.ID) ([]commissiondomain.MonthlyBucket, error) {
	now := s.clock.Now()
	buckets := make([]commissiondomain.MonthlyBucket, 0, trailingMonths)

	for i := trailingMonths - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		count, total, err := s.repo.AggregateBetween(ctx, s.db, representativeID, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, commissiondomain.MonthlyBucket{
			Month: monthStart,
			Count: count,
			Total: total,
		})
	}
	return buckets, nil
}

func actorPtr(actorID string) *string {
	actor := strings.TrimSpace(actorID)
	if actor == "" {
		return nil
	}
	return &actor
}
