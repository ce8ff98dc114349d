package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateRequest struct {
	Name                      string        `json:"name"`
	Document                  string        `json:"document"`
	AverageMonthlyConsumption float64       `json:"average_monthly_consumption"`
	RepresentativeID          *snowflake.ID `json:"representative_id,omitempty"`
}

type ListFilter struct {
	Status         ConsumerStatus
	ApprovalStatus ApprovalStatus
	GeneratorID    *snowflake.ID
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Consumer, error)
	Get(ctx context.Context, id snowflake.ID) (*Consumer, error)
	List(ctx context.Context, filter ListFilter) ([]Consumer, error)
	Approve(ctx context.Context, id snowflake.ID, actorID string) (*Consumer, error)
	Reject(ctx context.Context, id snowflake.ID, actorID string) (*Consumer, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, status ConsumerStatus) (*Consumer, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrNotFound               = errors.New("consumer_not_found")
	ErrInvalidName            = errors.New("invalid_name")
	ErrInvalidConsumption     = errors.New("invalid_consumption")
	ErrInvalidStatus          = errors.New("invalid_status")
	ErrRepresentativeNotFound = errors.New("representative_not_found")
	ErrAlreadyReviewed        = errors.New("consumer_already_reviewed")
	ErrAllocationManaged      = errors.New("allocation_status_managed_by_engine")
	ErrAllocated              = errors.New("consumer_allocated")
)
