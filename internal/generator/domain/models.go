package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type GeneratorStatus string

var (
	StatusUnderAnalysis      GeneratorStatus = "UNDER_ANALYSIS"
	StatusAwaitingAllocation GeneratorStatus = "AWAITING_ALLOCATION"
	StatusActive             GeneratorStatus = "ACTIVE"
	StatusInactive           GeneratorStatus = "INACTIVE"
)

type SourceType string

var (
	SourceSolar   SourceType = "SOLAR"
	SourceWind    SourceType = "WIND"
	SourceHydro   SourceType = "HYDRO"
	SourceBiomass SourceType = "BIOMASS"
)

// Generator is a power plant whose installed capacity consumers are allocated
// against. Consumers hold the back reference; the generator row carries none.
type Generator struct {
	ID             snowflake.ID    `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"type:text;not null"`
	InstalledPower float64         `json:"installed_power" gorm:"not null"`
	Status         GeneratorStatus `json:"status" gorm:"type:text;not null;index"`
	SourceType     SourceType      `json:"source_type" gorm:"type:text;not null"`
	City           string          `json:"city" gorm:"type:text"`
	State          string          `json:"state" gorm:"type:text"`
	OwnerDocument  string          `json:"owner_document" gorm:"type:text"`
	CreatedAt      time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"not null"`
}

func (Generator) TableName() string { return "generators" }
