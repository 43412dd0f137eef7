package provider

import (
	"context"

	"cryptoswap-service/internal/application"
	"cryptoswap-service/internal/domain"
)

// Ensure Fake implements application.PriceSource.
var _ application.PriceSource = (*Fake)(nil)

type Fake struct {
	quotes []domain.PriceQuote
}

func NewFake(quotes []domain.PriceQuote) *Fake { return &Fake{quotes: quotes} }

func (f *Fake) Fetch(context.Context) ([]domain.PriceQuote, error) {
	return f.quotes, nil
}
