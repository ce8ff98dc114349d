package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	settingdomain "github.com/voltgrid/voltgrid/internal/setting/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:seed_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&settingdomain.SystemSetting{}))
	return db
}

func TestEnsureKwhPriceSeedsOnce(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, EnsureKwhPrice(db, settingdomain.KeyKwhPrice, 0.90))
	require.NoError(t, EnsureKwhPrice(db, settingdomain.KeyKwhPrice, 1.50))

	var rows []settingdomain.SystemSetting
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "0.9", rows[0].Value)
	assert.True(t, rows[0].Active)
}

func TestEnsureKwhPriceDefaultsKey(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, EnsureKwhPrice(db, "  ", 0.90))

	var key string
	require.NoError(t, db.Raw("SELECT setting_key FROM system_settings LIMIT 1").Scan(&key).Error)
	assert.Equal(t, settingdomain.KeyKwhPrice, key)
}
