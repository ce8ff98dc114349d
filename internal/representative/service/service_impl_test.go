package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/voltgrid/voltgrid/internal/clock"
	repdomain "github.com/voltgrid/voltgrid/internal/representative/domain"
	reprepo "github.com/voltgrid/voltgrid/internal/representative/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:representative_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&repdomain.Representative{}))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) repdomain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)),
		Repo:  reprepo.Provide(),
	})
}

func TestCreateRepresentative(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	entity, err := svc.Create(ctx, repdomain.CreateRequest{
		Name:  "  Joao Lima  ",
		Email: " Joao.Lima@Example.COM ",
		Phone: "+55 85 99999-0000",
	})
	require.NoError(t, err)

	assert.Equal(t, "Joao Lima", entity.Name)
	assert.Equal(t, "joao.lima@example.com", entity.Email)
	assert.True(t, entity.Active)

	fetched, err := svc.Get(ctx, entity.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Email, fetched.Email)
}

func TestCreateRepresentativeValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, repdomain.CreateRequest{Name: " ", Email: "a@b.com"})
	assert.ErrorIs(t, err, repdomain.ErrInvalidName)

	_, err = svc.Create(ctx, repdomain.CreateRequest{Name: "X", Email: "not-an-email"})
	assert.ErrorIs(t, err, repdomain.ErrInvalidEmail)
}

func TestCreateRepresentativeDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, repdomain.CreateRequest{Name: "A", Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, repdomain.CreateRequest{Name: "B", Email: "DUP@example.com"})
	assert.ErrorIs(t, err, repdomain.ErrEmailTaken)
}

func TestGetRepresentativeNotFound(t *testing.T) {
	db := setupTestDB(t)
	node, _ := snowflake.NewNode(2)
	svc := newTestService(t, db)

	_, err := svc.Get(context.Background(), node.Generate())
	assert.ErrorIs(t, err, repdomain.ErrNotFound)
}

func TestListRepresentatives(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, repdomain.CreateRequest{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, repdomain.CreateRequest{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
