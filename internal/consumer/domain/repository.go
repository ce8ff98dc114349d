package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, consumer *Consumer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Consumer, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Consumer, error)
	ListByGenerator(ctx context.Context, db *gorm.DB, generatorID snowflake.ID) ([]Consumer, error)
	UpdateApproval(ctx context.Context, db *gorm.DB, id snowflake.ID, status ApprovalStatus, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status ConsumerStatus, updatedAt time.Time) error
	SetAllocation(ctx context.Context, db *gorm.DB, id, generatorID snowflake.ID, percentage float64, updatedAt time.Time) error
	ClearAllocation(ctx context.Context, db *gorm.DB, id snowflake.ID, updatedAt time.Time) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
