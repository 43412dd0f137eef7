package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"cryptoswap-service/internal/application"
	"cryptoswap-service/internal/domain"
)

// PriceFeedProvider reads the spot price feed: a JSON array of
// {currency, date, price} records. One unauthenticated GET, no retry.
type PriceFeedProvider struct {
	URL    string
	Client *http.Client
}

var _ application.PriceSource = (*PriceFeedProvider)(nil)

type feedRecord struct {
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
}

func (p *PriceFeedProvider) Fetch(ctx context.Context) ([]domain.PriceQuote, error) {
	if p.URL == "" {
		return nil, errors.New("pricefeed: missing URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("pricefeed: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pricefeed: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricefeed: status %d", resp.StatusCode)
	}

	var body []feedRecord
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("pricefeed: decode response: %w", err)
	}

	quotes := make([]domain.PriceQuote, 0, len(body))
	for _, r := range body {
		quotes = append(quotes, domain.PriceQuote{
			Currency: r.Currency,
			Date:     r.Date,
			Price:    r.Price,
		})
	}
	return quotes, nil
}
