package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rep *Representative) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Representative, error)
	List(ctx context.Context, db *gorm.DB) ([]Representative, error)
}
