package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type ConsumerStatus string

var (
	StatusAvailable ConsumerStatus = "AVAILABLE"
	StatusAllocated ConsumerStatus = "ALLOCATED"
	StatusInProcess ConsumerStatus = "IN_PROCESS"
	StatusConverted ConsumerStatus = "CONVERTED"
)

type ApprovalStatus string

var (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// Consumer holds the weak back reference to its generator. Invariant:
// AllocatedPercentage is non-nil exactly when Status is ALLOCATED and
// GeneratorID is set; the allocation engine maintains all three together.
type Consumer struct {
	ID                        snowflake.ID   `json:"id" gorm:"primaryKey"`
	Name                      string         `json:"name" gorm:"type:text;not null"`
	Document                  string         `json:"document" gorm:"type:text"`
	AverageMonthlyConsumption float64        `json:"average_monthly_consumption" gorm:"not null"`
	Status                    ConsumerStatus `json:"status" gorm:"type:text;not null;index"`
	AllocatedPercentage       *float64       `json:"allocated_percentage,omitempty"`
	GeneratorID               *snowflake.ID  `json:"generator_id,omitempty" gorm:"index"`
	RepresentativeID          *snowflake.ID  `json:"representative_id,omitempty" gorm:"index"`
	ApprovalStatus            ApprovalStatus `json:"approval_status" gorm:"type:text;not null;index"`
	CreatedAt                 time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt                 time.Time      `json:"updated_at" gorm:"not null"`
}

func (Consumer) TableName() string { return "consumers" }
