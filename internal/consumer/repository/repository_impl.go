package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	consumerdomain "github.com/voltgrid/voltgrid/internal/consumer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() consumerdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, c *consumerdomain.Consumer) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO consumers (
			id, name, document, average_monthly_consumption, status,
			allocated_percentage, generator_id, representative_id,
			approval_status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.Name,
		c.Document,
		c.AverageMonthlyConsumption,
		c.Status,
		c.AllocatedPercentage,
		c.GeneratorID,
		c.RepresentativeID,
		c.ApprovalStatus,
		c.CreatedAt,
		c.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*consumerdomain.Consumer, error) {
	var c consumerdomain.Consumer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, document, average_monthly_consumption, status,
		 allocated_percentage, generator_id, representative_id,
		 approval_status, created_at, updated_at
		 FROM consumers WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter consumerdomain.ListFilter) ([]consumerdomain.Consumer, error) {
	var items []consumerdomain.Consumer
	stmt := db.WithContext(ctx).Model(&consumerdomain.Consumer{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.ApprovalStatus != "" {
		stmt = stmt.Where("approval_status = ?", filter.ApprovalStatus)
	}
	if filter.GeneratorID != nil {
		stmt = stmt.Where("generator_id = ?", *filter.GeneratorID)
	}
	if err := stmt.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListByGenerator(ctx context.Context, db *gorm.DB, generatorID snowflake.ID) ([]consumerdomain.Consumer, error) {
	var items []consumerdomain.Consumer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, document, average_monthly_consumption, status,
		 allocated_percentage, generator_id, representative_id,
		 approval_status, created_at, updated_at
		 FROM consumers WHERE generator_id = ? ORDER BY created_at ASC`,
		generatorID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateApproval(ctx context.Context, db *gorm.DB, id snowflake.ID, status consumerdomain.ApprovalStatus, updatedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE consumers SET approval_status = ?, updated_at = ? WHERE id = ?`,
		status,
		updatedAt,
		id,
	).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status consumerdomain.ConsumerStatus, updatedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE consumers SET status = ?, updated_at = ? WHERE id = ?`,
		status,
		updatedAt,
		id,
	).Error
}

func (r *repo) SetAllocation(ctx context.Context, db *gorm.DB, id, generatorID snowflake.ID, percentage float64, updatedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE consumers
		 SET status = ?, generator_id = ?, allocated_percentage = ?, updated_at = ?
		 WHERE id = ?`,
		consumerdomain.StatusAllocated,
		generatorID,
		percentage,
		updatedAt,
		id,
	).Error
}

func (r *repo) ClearAllocation(ctx context.Context, db *gorm.DB, id snowflake.ID, updatedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE consumers
		 SET status = ?, generator_id = NULL, allocated_percentage = NULL, updated_at = ?
		 WHERE id = ?`,
		consumerdomain.StatusAvailable,
		updatedAt,
		id,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM consumers WHERE id = ?`, id).Error
}
