package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	auditdomain "github.com/voltgrid/voltgrid/internal/audit/domain"
	"github.com/voltgrid/voltgrid/internal/clock"
	consumerdomain "github.com/voltgrid/voltgrid/internal/consumer/domain"
	gendomain "github.com/voltgrid/voltgrid/internal/generator/domain"
	generatorrepo "github.com/voltgrid/voltgrid/internal/generator/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type noopAuditService struct{}

func (noopAuditService) Log(ctx context.Context, entry auditdomain.Entry) error {
	return nil
}

func (noopAuditService) List(ctx context.Context, req auditdomain.ListAuditLogRequest) (auditdomain.ListAuditLogResponse, error) {
	return auditdomain.ListAuditLogResponse{}, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:generator_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&gendomain.Generator{},
		&consumerdomain.Consumer{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) gendomain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)),
		Repo:  generatorrepo.Provide(),
		Audit: noopAuditService{},
	})
}

func TestCreateGenerator(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	entity, err := svc.Create(ctx, gendomain.CreateRequest{
		Name:           "Usina Solar Horizonte",
		InstalledPower: 2500,
		SourceType:     "solar",
		City:           "Petrolina",
		State:          "PE",
	})
	require.NoError(t, err)

	assert.Equal(t, gendomain.StatusUnderAnalysis, entity.Status)
	assert.Equal(t, gendomain.SourceSolar, entity.SourceType)
	assert.InDelta(t, 2500, entity.InstalledPower, 0.0001)
}

func TestCreateGeneratorValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, gendomain.CreateRequest{Name: " ", SourceType: gendomain.SourceWind})
	assert.ErrorIs(t, err, gendomain.ErrInvalidName)

	_, err = svc.Create(ctx, gendomain.CreateRequest{Name: "X", InstalledPower: -5, SourceType: gendomain.SourceWind})
	assert.ErrorIs(t, err, gendomain.ErrInvalidInstalledPower)

	_, err = svc.Create(ctx, gendomain.CreateRequest{Name: "X", SourceType: "GEOTHERMAL"})
	assert.ErrorIs(t, err, gendomain.ErrInvalidSourceType)
}

func TestUpdateGeneratorStatus(t *testing.T) {
	db := setupTestDB(t)
	node, _ := snowflake.NewNode(2)
	svc := newTestService(t, db)
	ctx := context.Background()

	entity, err := svc.Create(ctx, gendomain.CreateRequest{
		Name:           "Parque Eolico Sul",
		InstalledPower: 5000,
		SourceType:     gendomain.SourceWind,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, entity.ID, "active", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, gendomain.StatusActive, updated.Status)

	// Any status may move to any other, including back.
	updated, err = svc.UpdateStatus(ctx, entity.ID, gendomain.StatusUnderAnalysis, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, gendomain.StatusUnderAnalysis, updated.Status)

	_, err = svc.UpdateStatus(ctx, entity.ID, "UNKNOWN", "admin-1")
	assert.ErrorIs(t, err, gendomain.ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, node.Generate(), gendomain.StatusActive, "admin-1")
	assert.ErrorIs(t, err, gendomain.ErrNotFound)

	var row gendomain.Generator
	require.NoError(t, db.First(&row, "id = ?", entity.ID).Error)
	assert.True(t, row.UpdatedAt.Equal(time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)),
		"updated_at should come from the injected clock, got %v", row.UpdatedAt)
}

func TestListGeneratorsRejectsBadFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.List(context.Background(), gendomain.ListFilter{Status: "NOPE"})
	assert.ErrorIs(t, err, gendomain.ErrInvalidStatus)
}

func TestDeleteGeneratorWithConsumers(t *testing.T) {
	db := setupTestDB(t)
	node, _ := snowflake.NewNode(3)
	svc := newTestService(t, db)
	ctx := context.Background()

	entity, err := svc.Create(ctx, gendomain.CreateRequest{
		Name:           "PCH Cachoeira",
		InstalledPower: 800,
		SourceType:     gendomain.SourceHydro,
	})
	require.NoError(t, err)

	pct := 50.0
	now := time.Now().UTC()
	require.NoError(t, db.Create(&consumerdomain.Consumer{
		ID:                        node.Generate(),
		Name:                      "Fazenda Boa Vista",
		AverageMonthlyConsumption: 900,
		Status:                    consumerdomain.StatusAllocated,
		AllocatedPercentage:       &pct,
		GeneratorID:               &entity.ID,
		ApprovalStatus:            consumerdomain.ApprovalApproved,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}).Error)

	assert.ErrorIs(t, svc.Delete(ctx, entity.ID), gendomain.ErrHasConsumers)

	require.NoError(t, db.Exec("DELETE FROM consumers").Error)
	require.NoError(t, svc.Delete(ctx, entity.ID))

	_, err = svc.Get(ctx, entity.ID)
	assert.ErrorIs(t, err, gendomain.ErrNotFound)
}
