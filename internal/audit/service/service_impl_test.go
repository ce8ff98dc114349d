package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	auditdomain "github.com/voltgrid/voltgrid/internal/audit/domain"
	auditrepo "github.com/voltgrid/voltgrid/internal/audit/repository"
	"github.com/voltgrid/voltgrid/internal/clock"
	"github.com/voltgrid/voltgrid/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:audit_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&auditdomain.AuditLog{}))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, fakeClock *clock.FakeClock) auditdomain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fakeClock,
		Repo:  auditrepo.Provide(),
	})
}

func TestLogActorTypes(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.NewFakeClock(time.Now()))
	ctx := context.Background()

	actor := "admin-1"
	require.NoError(t, svc.Log(ctx, auditdomain.Entry{
		ActorID:    &actor,
		Action:     "commission.paid",
		TargetType: "commission",
	}))

	require.NoError(t, svc.Log(ctx, auditdomain.Entry{
		Action:     "setting.kwh_price.updated",
		TargetType: "system_setting",
	}))

	var rows []auditdomain.AuditLog
	require.NoError(t, db.Order("created_at asc, id asc").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, auditdomain.ActorTypeUser, rows[0].ActorType)
	assert.Equal(t, auditdomain.ActorTypeSystem, rows[1].ActorType)
	assert.Nil(t, rows[1].ActorID)
}

func TestLogRejectsEmptyAction(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.NewFakeClock(time.Now()))

	err := svc.Log(context.Background(), auditdomain.Entry{Action: "   "})
	assert.ErrorIs(t, err, auditdomain.ErrInvalidAction)
}

func TestListPaginatesWithCursor(t *testing.T) {
	db := setupTestDB(t)
	fakeClock := clock.NewFakeClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, fakeClock)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Log(ctx, auditdomain.Entry{
			Action:     "consumer.allocated",
			TargetType: "consumer",
		}))
		fakeClock.Advance(time.Minute)
	}

	first, err := svc.List(ctx, auditdomain.ListAuditLogRequest{
		Pagination: pagination.Pagination{PageSize: 2},
		Action:     "consumer.allocated",
	})
	require.NoError(t, err)
	require.Len(t, first.AuditLogs, 2)
	assert.True(t, first.HasMore)
	require.NotEmpty(t, first.NextPageToken)

	second, err := svc.List(ctx, auditdomain.ListAuditLogRequest{
		Pagination: pagination.Pagination{PageSize: 2, PageToken: first.NextPageToken},
		Action:     "consumer.allocated",
	})
	require.NoError(t, err)
	require.Len(t, second.AuditLogs, 2)

	// Newest first, no overlap between pages.
	assert.True(t, first.AuditLogs[0].CreatedAt.After(first.AuditLogs[1].CreatedAt))
	for _, a := range first.AuditLogs {
		for _, b := range second.AuditLogs {
			assert.NotEqual(t, a.ID, b.ID)
		}
	}
}

func TestListCursorKeepsSubSecondOrder(t *testing.T) {
	db := setupTestDB(t)
	fakeClock := clock.NewFakeClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, fakeClock)
	ctx := context.Background()

	// Rows written within the same second must all survive a cursor walk;
	// a seconds-truncated cursor would skip siblings of the page boundary.
	for i := 0; i < 4; i++ {
		require.NoError(t, svc.Log(ctx, auditdomain.Entry{
			Action:     "consumer.deallocated",
			TargetType: "consumer",
		}))
		fakeClock.Advance(time.Millisecond)
	}

	seen := make(map[snowflake.ID]bool)
	token := ""
	for {
		page, err := svc.List(ctx, auditdomain.ListAuditLogRequest{
			Pagination: pagination.Pagination{PageSize: 1, PageToken: token},
			Action:     "consumer.deallocated",
		})
		require.NoError(t, err)
		for _, item := range page.AuditLogs {
			assert.False(t, seen[item.ID], "row %s returned twice", item.ID)
			seen[item.ID] = true
		}
		if !page.HasMore {
			break
		}
		token = page.NextPageToken
	}
	assert.Len(t, seen, 4)
}

func TestListRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.NewFakeClock(time.Now()))
	ctx := context.Background()

	_, err := svc.List(ctx, auditdomain.ListAuditLogRequest{
		Pagination: pagination.Pagination{PageToken: "not-base64!"},
	})
	assert.ErrorIs(t, err, auditdomain.ErrInvalidPageToken)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err = svc.List(ctx, auditdomain.ListAuditLogRequest{
		StartAt: &start,
		EndAt:   &end,
	})
	assert.ErrorIs(t, err, auditdomain.ErrInvalidTimeRange)
}
