package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type CommissionStatus string

var (
	StatusPending    CommissionStatus = "PENDING"
	StatusCalculated CommissionStatus = "CALCULATED"
	StatusPaid       CommissionStatus = "PAID"
	// StatusCancelled is part of the taxonomy but no operation produces it.
	StatusCancelled CommissionStatus = "CANCELLED"
)

// Commission is the payout owed to the representative who originated a
// consumer. Consumption and price are snapshots taken at calculation time;
// CommissionValue never changes afterwards, only status and payment metadata.
type Commission struct {
	ID               snowflake.ID     `json:"id" gorm:"primaryKey"`
	RepresentativeID snowflake.ID     `json:"representative_id" gorm:"not null;index;uniqueIndex:ux_commissions_consumer_rep"`
	ConsumerID       snowflake.ID     `json:"consumer_id" gorm:"not null;uniqueIndex:ux_commissions_consumer_rep"`
	KwhConsumption   float64          `json:"kwh_consumption" gorm:"not null"`
	KwhPrice         float64          `json:"kwh_price" gorm:"not null"`
	CommissionValue  float64          `json:"commission_value" gorm:"not null"`
	Status           CommissionStatus `json:"status" gorm:"type:text;not null;index"`
	CalculatedAt     time.Time        `json:"calculated_at" gorm:"not null;index"`
	PaidAt           *time.Time       `json:"paid_at,omitempty"`

	PaymentProofURL        *string    `json:"payment_proof_url,omitempty" gorm:"type:text"`
	PaymentProofFileName   *string    `json:"payment_proof_file_name,omitempty" gorm:"type:text"`
	PaymentProofUploadedAt *time.Time `json:"payment_proof_uploaded_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Commission) TableName() string { return "commissions" }

// StatusTotal aggregates commissions of one status. Missing data aggregates
// to zero, never null.
type StatusTotal struct {
	Status CommissionStatus `json:"status"`
	Count  int64            `json:"count"`
	Total  float64          `json:"total"`
}

// MonthlyBucket is one calendar month of the trailing breakdown, keyed by the
// month's first day.
type MonthlyBucket struct {
	Month time.Time `json:"month"`
	Count int64     `json:"count"`
	Total float64   `json:"total"`
}
