package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	commissiondomain "github.com/voltgrid/voltgrid/internal/commission/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() commissiondomain.Repository {
	return &repo{}
}

const commissionColumns = `id, representative_id, consumer_id, kwh_consumption, kwh_price,
	commission_value, status, calculated_at, paid_at,
	payment_proof_url, payment_proof_file_name, payment_proof_uploaded_at,
	created_at, updated_at`

func (r *repo) Insert(ctx context.Context, db *gorm.DB, c *commissiondomain.Commission) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO commissions (
			id, representative_id, consumer_id, kwh_consumption, kwh_price,
			commission_value, status, calculated_at, paid_at,
			payment_proof_url, payment_proof_file_name, payment_proof_uploaded_at,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.RepresentativeID,
		c.ConsumerID,
		c.KwhConsumption,
		c.KwhPrice,
		c.CommissionValue,
		c.Status,
		c.CalculatedAt,
		c.PaidAt,
		c.PaymentProofURL,
		c.PaymentProofFileName,
		c.PaymentProofUploadedAt,
		c.CreatedAt,
		c.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*commissiondomain.Commission, error) {
	var c commissiondomain.Commission
	err := db.WithContext(ctx).Raw(
		`SELECT `+commissionColumns+` FROM commissions WHERE id = ?`,
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

func (r *repo) FindByPair(ctx context.Context, db *gorm.DB, consumerID, representativeID snowflake.ID) (*commissiondomain.Commission, error) {
	var c commissiondomain.Commission
	err := db.WithContext(ctx).Raw(
		`SELECT `+commissionColumns+` FROM commissions
		 WHERE consumer_id = ? AND representative_id = ?`,
		consumerID,
		representativeID,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) ListByRepresentative(ctx context.Context, db *gorm.DB, representativeID snowflake.ID) ([]commissiondomain.Commission, error) {
	var items []commissiondomain.Commission
	err := db.WithContext(ctx).Raw(
		`SELECT `+commissionColumns+` FROM commissions
		 WHERE representative_id = ? ORDER BY calculated_at DESC`,
		representativeID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) MarkPaid(ctx context.Context, db *gorm.DB, id snowflake.ID, paidAt time.Time) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE commissions
		 SET status = ?, paid_at = ?, updated_at = ?
		 WHERE id = ? AND status <> ?`,
		commissiondomain.StatusPaid,
		paidAt,
		paidAt,
		id,
		commissiondomain.StatusPaid,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repo) SetPaymentProof(ctx context.Context, db *gorm.DB, id snowflake.ID, url, fileName string, uploadedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE commissions
		 SET payment_proof_url = ?, payment_proof_file_name = ?, payment_proof_uploaded_at = ?, updated_at = ?
		 WHERE id = ?`,
		url,
		fileName,
		uploadedAt,
		uploadedAt,
		id,
	).Error
}

func (r *repo) TotalsByStatus(ctx context.Context, db *gorm.DB, representativeID *snowflake.ID) ([]commissiondomain.StatusTotal, error) {
	var totals []commissiondomain.StatusTotal
	stmt := db.WithContext(ctx).Model(&commissiondomain.Commission{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(commission_value), 0) AS total").
		Group("status")
	if representativeID != nil {
		stmt = stmt.Where("representative_id = ?", *representativeID)
	}
	if err := stmt.Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *repo) AggregateBetween(ctx context.Context, db *gorm.DB, representativeID *snowflake.ID, start, end time.Time) (int64, float64, error) {
	var row struct {
		Count int64
		Total float64
	}
	stmt := db.WithContext(ctx).Model(&commissiondomain.Commission{}).
		Select("COUNT(*) AS count, COALESCE(SUM(commission_value), 0) AS total").
		Where("calculated_at >= ? AND calculated_at <= ?", start, end)
	if representativeID != nil {
		stmt = stmt.Where("representative_id = ?", *representativeID)
	}
	if err := stmt.Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Count, row.Total, nil
}
