package application

import (
	"context"
	"time"

	"cryptoswap-service/internal/domain"

	"github.com/google/uuid"
)

// PriceSource fetches the raw price feed. Single attempt, no retry.
type PriceSource interface {
	Fetch(ctx context.Context) ([]domain.PriceQuote, error)
}

// SwapRepo stores submitted swaps for the lifetime of the process.
type SwapRepo interface {
	Create(ctx context.Context, s domain.Swap) error
	GetByID(ctx context.Context, id string) (domain.Swap, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Swap, error)
	MarkConfirmed(ctx context.Context, id string, at time.Time) error
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type IDGen interface {
	NewID() string
}

type defaultIDGen struct{}

func (defaultIDGen) NewID() string { return uuid.NewString() }
