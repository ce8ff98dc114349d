package repository

import (
	"context"
	"time"

	settingdomain "github.com/voltgrid/voltgrid/internal/setting/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() settingdomain.Repository {
	return &repo{}
}

func (r *repo) FindActive(ctx context.Context, db *gorm.DB, key string) (*settingdomain.SystemSetting, error) {
	var setting settingdomain.SystemSetting
	err := db.WithContext(ctx).Raw(
		`SELECT id, setting_key, value, active, created_at, updated_at
		 FROM system_settings WHERE setting_key = ? AND active ORDER BY created_at DESC LIMIT 1`,
		key,
	).Scan(&setting).Error
	if err != nil {
		return nil, err
	}
	if setting.ID == 0 {
		return nil, nil
	}
	return &setting, nil
}

func (r *repo) Deactivate(ctx context.Context, db *gorm.DB, key string, updatedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE system_settings SET active = ?, updated_at = ? WHERE setting_key = ? AND active`,
		false,
		updatedAt,
		key,
	).Error
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, setting *settingdomain.SystemSetting) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO system_settings (id, setting_key, value, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		setting.ID,
		setting.Key,
		setting.Value,
		setting.Active,
		setting.CreatedAt,
		setting.UpdatedAt,
	).Error
}

func (r *repo) History(ctx context.Context, db *gorm.DB, key string) ([]settingdomain.SystemSetting, error) {
	var items []settingdomain.SystemSetting
	err := db.WithContext(ctx).Raw(
		`SELECT id, setting_key, value, active, created_at, updated_at
		 FROM system_settings WHERE setting_key = ? ORDER BY created_at DESC`,
		key,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
