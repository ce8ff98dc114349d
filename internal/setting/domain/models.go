package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// KeyKwhPrice is the system-wide energy price consumed by the commission engine.
const KeyKwhPrice = "KWH_PRICE"

// SystemSetting is a versioned key/value row. Updates deactivate the current
// active row and insert a fresh one, keeping prior rows as history.
type SystemSetting struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Key       string       `json:"key" gorm:"column:setting_key;type:text;not null;index"`
	Value     string       `json:"value" gorm:"type:text;not null"`
	Active    bool         `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"not null"`
}

func (SystemSetting) TableName() string { return "system_settings" }
