package seed

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	settingdomain "github.com/voltgrid/voltgrid/internal/setting/domain"
	"gorm.io/gorm"
)

// EnsureKwhPrice seeds the active kWh price setting for startup bootstrap.
// Existing active rows are left untouched.
func EnsureKwhPrice(db *gorm.DB, key string, value float64) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		key = settingdomain.KeyKwhPrice
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&settingdomain.SystemSetting{}).
			Where("setting_key = ? AND active", key).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		return tx.Create(&settingdomain.SystemSetting{
			ID:        node.Generate(),
			Key:       key,
			Value:     strconv.FormatFloat(value, 'f', -1, 64),
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error
	})
}
