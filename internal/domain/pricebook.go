package domain

import "sort"

// PriceBook maps a currency code to its latest USD price.
type PriceBook map[string]float64

// BuildPriceBook folds raw feed records into a price book. Records with a
// non-positive price are discarded; on duplicate codes the last-seen price wins.
func BuildPriceBook(quotes []PriceQuote) PriceBook {
	book := make(PriceBook, len(quotes))
	for _, q := range quotes {
		if q.Currency == "" || q.Price <= 0 {
			continue
		}
		book[q.Currency] = q.Price
	}
	return book
}

// Currencies derives the selectable currency list, sorted by code.
func (pb PriceBook) Currencies() []Currency {
	out := make([]Currency, 0, len(pb))
	for code, price := range pb {
		out = append(out, Currency{Code: code, Name: code, PriceUSD: price})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Lookup returns the currency for a code, if it is priced.
func (pb PriceBook) Lookup(code string) (Currency, bool) {
	price, ok := pb[code]
	if !ok {
		return Currency{}, false
	}
	return Currency{Code: code, Name: code, PriceUSD: price}, true
}
