package domain

// PriceQuote is a raw record from the external price feed.
type PriceQuote struct {
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
}

// Currency is a selectable currency derived from the price feed.
// Name defaults to Code since the feed carries no display names.
type Currency struct {
	Code     string
	Name     string
	PriceUSD float64
}
