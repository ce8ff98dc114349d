package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	repdomain "github.com/voltgrid/voltgrid/internal/representative/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() repdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rep *repdomain.Representative) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO representatives (id, name, email, phone, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rep.ID,
		rep.Name,
		rep.Email,
		rep.Phone,
		rep.Active,
		rep.CreatedAt,
		rep.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*repdomain.Representative, error) {
	var rep repdomain.Representative
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, active, created_at, updated_at
		 FROM representatives WHERE id = ?`,
		id,
	).Scan(&rep).Error
	if err != nil {
		return nil, err
	}
	if rep.ID == 0 {
		return nil, nil
	}
	return &rep, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]repdomain.Representative, error) {
	var items []repdomain.Representative
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, active, created_at, updated_at
		 FROM representatives ORDER BY created_at ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
