package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	// CreateForApprovedConsumer computes and records the commission for the
	// representative who originated the consumer. Precondition order:
	// consumer exists, representative linked, consumer approved, no prior
	// commission for the pair.
	CreateForApprovedConsumer(ctx context.Context, consumerID snowflake.ID, actorID string) (*Commission, error)

	// MarkAsPaid transitions CALCULATED -> PAID exactly once. A second call
	// on a PAID commission fails with ErrAlreadyPaid and must not touch
	// PaidAt; double submissions are surfaced, never absorbed.
	MarkAsPaid(ctx context.Context, commissionID snowflake.ID, actorID string) (*Commission, error)

	// AttachPaymentProof uploads the proof document through the storage
	// provider and records the returned URL/filename on the commission.
	AttachPaymentProof(ctx context.Context, commissionID snowflake.ID, fileName string, content []byte) (*Commission, error)

	Get(ctx context.Context, id snowflake.ID) (*Commission, error)
	ListByRepresentative(ctx context.Context, representativeID snowflake.ID) ([]Commission, error)

	// Totals sums count and value per status, scoped to one representative
	// when representativeID is non-nil.
	Totals(ctx context.Context, representativeID *snowflake.ID) ([]StatusTotal, error)

	// MonthlyBreakdown buckets commissions over the trailing six calendar
	// months by CalculatedAt, zero-filling empty months.
	MonthlyBreakdown(ctx context.Context, representativeID *snowflake.ID) ([]MonthlyBucket, error)
}

var (
	ErrNotFound            = errors.New("commission_not_found")
	ErrConsumerNotFound    = errors.New("consumer_not_found")
	ErrNoRepresentative    = errors.New("consumer_has_no_representative")
	ErrConsumerNotApproved = errors.New("consumer_not_approved")
	ErrCommissionExists    = errors.New("commission_already_exists")
	ErrAlreadyPaid         = errors.New("commission_already_paid")
	ErrNotPaid             = errors.New("commission_not_paid")
	ErrInvalidFileName     = errors.New("invalid_file_name")
)
