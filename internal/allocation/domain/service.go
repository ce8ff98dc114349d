package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	consumerdomain "github.com/voltgrid/voltgrid/internal/consumer/domain"
)

type Service interface {
	// Allocate assigns a consumer a share of a generator's capacity. The
	// consumer must not already be ALLOCATED; explicit deallocation comes
	// first, the engine never reallocates or renormalizes in place.
	Allocate(ctx context.Context, consumerID, generatorID snowflake.ID, percentage float64, actorID string) (*consumerdomain.Consumer, error)

	// Deallocate returns a consumer to AVAILABLE and clears its generator
	// share. Safe on never-allocated consumers. Commissions are not reversed.
	Deallocate(ctx context.Context, consumerID snowflake.ID, actorID string) (*consumerdomain.Consumer, error)

	// GeneratorCapacity returns the derived capacity view for a generator.
	GeneratorCapacity(ctx context.Context, generatorID snowflake.ID) (*CapacityView, error)
}

var (
	ErrInvalidPercentage = errors.New("invalid_percentage")
	ErrConsumerNotFound  = errors.New("consumer_not_found")
	ErrGeneratorNotFound = errors.New("generator_not_found")
	ErrAlreadyAllocated  = errors.New("consumer_already_allocated")
)
