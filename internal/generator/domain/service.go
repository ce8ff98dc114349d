package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateRequest struct {
	Name           string     `json:"name"`
	InstalledPower float64    `json:"installed_power"`
	SourceType     SourceType `json:"source_type"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	OwnerDocument  string     `json:"owner_document"`
}

type ListFilter struct {
	Status GeneratorStatus
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Generator, error)
	Get(ctx context.Context, id snowflake.ID) (*Generator, error)
	List(ctx context.Context, filter ListFilter) ([]Generator, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, status GeneratorStatus, actorID string) (*Generator, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrNotFound              = errors.New("generator_not_found")
	ErrInvalidName           = errors.New("invalid_name")
	ErrInvalidInstalledPower = errors.New("invalid_installed_power")
	ErrInvalidStatus         = errors.New("invalid_status")
	ErrInvalidSourceType     = errors.New("invalid_source_type")
	ErrHasConsumers          = errors.New("generator_has_consumers")
)
