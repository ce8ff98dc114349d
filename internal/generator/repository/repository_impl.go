package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	gendomain "github.com/voltgrid/voltgrid/internal/generator/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() gendomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, g *gendomain.Generator) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO generators (
			id, name, installed_power, status, source_type, city, state,
			owner_document, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID,
		g.Name,
		g.InstalledPower,
		g.Status,
		g.SourceType,
		g.City,
		g.State,
		g.OwnerDocument,
		g.CreatedAt,
		g.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*gendomain.Generator, error) {
	var g gendomain.Generator
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, installed_power, status, source_type, city, state,
		 owner_document, created_at, updated_at
		 FROM generators WHERE id = ?`,
		id,
	).Scan(&g).Error
	if err != nil {
		return nil, err
	}
	if g.ID == 0 {
		return nil, nil
	}
	return &g, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter gendomain.ListFilter) ([]gendomain.Generator, error) {
	var items []gendomain.Generator
	stmt := db.WithContext(ctx).Model(&gendomain.Generator{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if err := stmt.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status gendomain.GeneratorStatus, updatedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE generators SET status = ?, updated_at = ? WHERE id = ?`,
		status,
		updatedAt,
		id,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM generators WHERE id = ?`, id).Error
}

func (r *repo) CountConsumers(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Table("consumers").Where("generator_id = ?", id).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
