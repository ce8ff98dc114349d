package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, commission *Commission) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Commission, error)
	FindByPair(ctx context.Context, db *gorm.DB, consumerID, representativeID snowflake.ID) (*Commission, error)
	ListByRepresentative(ctx context.Context, db *gorm.DB, representativeID snowflake.ID) ([]Commission, error)

	// MarkPaid performs the conditional status flip and reports whether a row
	// actually changed, so callers can distinguish "already paid" races.
	MarkPaid(ctx context.Context, db *gorm.DB, id snowflake.ID, paidAt time.Time) (bool, error)

	SetPaymentProof(ctx context.Context, db *gorm.DB, id snowflake.ID, url, fileName string, uploadedAt time.Time) error

	TotalsByStatus(ctx context.Context, db *gorm.DB, representativeID *snowflake.ID) ([]StatusTotal, error)
	AggregateBetween(ctx context.Context, db *gorm.DB, representativeID *snowflake.ID, start, end time.Time) (int64, float64, error)
}
