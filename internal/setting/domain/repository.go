package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	FindActive(ctx context.Context, db *gorm.DB, key string) (*SystemSetting, error)
	Deactivate(ctx context.Context, db *gorm.DB, key string, updatedAt time.Time) error
	Insert(ctx context.Context, db *gorm.DB, setting *SystemSetting) error
	History(ctx context.Context, db *gorm.DB, key string) ([]SystemSetting, error)
}
