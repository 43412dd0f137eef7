package domain

import "time"

// SwapStatus is the lifecycle status of a submitted swap.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusConfirmed SwapStatus = "confirmed"
)

// Swap is a submitted swap awaiting its simulated confirmation. No funds move;
// confirmation is a fixed-delay acknowledgement.
type Swap struct {
	ID              string
	FromCurrency    string
	ToCurrency      string
	AmountToSend    string
	AmountToReceive string
	ExchangeRate    float64
	Status          SwapStatus
	SubmittedAt     time.Time
	ConfirmedAt     *time.Time
}
