package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Representative originates consumers and earns commission on the ones that
// convert. Linked from consumers at creation time, immutable afterwards.
type Representative struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"type:text;not null"`
	Email     string       `json:"email" gorm:"type:text;not null;uniqueIndex"`
	Phone     string       `json:"phone" gorm:"type:text"`
	Active    bool         `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"not null"`
}

func (Representative) TableName() string { return "representatives" }
