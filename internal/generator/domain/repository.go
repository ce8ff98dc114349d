package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, generator *Generator) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Generator, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Generator, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status GeneratorStatus, updatedAt time.Time) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	CountConsumers(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
}
