package domain

import (
	"context"
	"errors"
)

// PriceProvider is the narrow read contract the commission engine depends on.
type PriceProvider interface {
	CurrentKwhPrice(ctx context.Context) float64
}

type Service interface {
	PriceProvider

	UpdateKwhPrice(ctx context.Context, value float64, actorID string) (*SystemSetting, error)
	History(ctx context.Context, key string) ([]SystemSetting, error)
}

var (
	ErrInvalidPrice = errors.New("invalid_price")
	ErrInvalidKey   = errors.New("invalid_key")
)
