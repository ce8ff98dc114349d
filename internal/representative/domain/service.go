package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Representative, error)
	Get(ctx context.Context, id snowflake.ID) (*Representative, error)
	List(ctx context.Context) ([]Representative, error)
}

var (
	ErrNotFound     = errors.New("representative_not_found")
	ErrEmailTaken   = errors.New("representative_email_taken")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidEmail = errors.New("invalid_email")
)
