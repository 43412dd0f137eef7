package domain

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// MaxSendAmount is the ceiling for a send amount.
const MaxSendAmount = 1e12

// ZeroReceive is the receive amount whenever any conversion precondition fails.
const ZeroReceive = "0.00"

// receivePlaces is the fixed precision of a computed receive amount.
const receivePlaces = 8

// ParseAmount parses a send amount. The second return is false unless the
// string is a positive finite number not exceeding MaxSendAmount.
func ParseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v <= 0 || v > MaxSendAmount {
		return 0, false
	}
	return v, true
}

// Rate returns how many units of `to` one unit of `from` buys, going through
// the USD prices of both sides. It is 0 when the codes are equal or either
// side is unpriced.
func (pb PriceBook) Rate(from, to string) float64 {
	if from == "" || to == "" || from == to {
		return 0
	}
	pFrom, pTo := pb[from], pb[to]
	if pFrom <= 0 || pTo <= 0 {
		return 0
	}
	return pFrom / pTo
}

// Conversion is the outcome of a swap computation.
type Conversion struct {
	AmountToReceive string
	ExchangeRate    float64
}

// Convert computes the receive amount for sending `amount` of `from` in
// exchange for `to`. Preconditions for a non-zero result: the amount parses to
// a positive finite number within the ceiling, both codes are distinct and
// priced. Any violation yields ZeroReceive and a zero rate.
func (pb PriceBook) Convert(amount, from, to string) Conversion {
	v, ok := ParseAmount(amount)
	if !ok {
		return Conversion{AmountToReceive: ZeroReceive}
	}
	rate := pb.Rate(from, to)
	if rate == 0 {
		return Conversion{AmountToReceive: ZeroReceive}
	}
	received := decimal.NewFromFloat(v * rate).StringFixed(receivePlaces)
	return Conversion{AmountToReceive: received, ExchangeRate: rate}
}
