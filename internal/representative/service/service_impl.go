package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/voltgrid/voltgrid/internal/clock"
	repdomain "github.com/voltgrid/voltgrid/internal/representative/domain"
	"github.com/voltgrid/voltgrid/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  repdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repdomain.Repository
}

func New(p Params) repdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("representative.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req repdomain.CreateRequest) (*repdomain.Representative, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, repdomain.ErrInvalidName
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, repdomain.ErrInvalidEmail
	}

	now := s.clock.Now()
	entity := &repdomain.Representative{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, repdomain.ErrEmailTaken
		}
		return nil, err
	}

	return entity, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*repdomain.Representative, error) {
	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, repdomain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context) ([]repdomain.Representative, error) {
	return s.repo.List(ctx, s.db)
}
