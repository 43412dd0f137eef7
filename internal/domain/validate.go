package domain

import (
	"math"
	"strconv"
)

// Validation messages shown next to the swap form fields.
const (
	MsgAmountRequired   = "Amount is required."
	MsgAmountPositive   = "Please enter a positive amount."
	MsgAmountCeiling    = "Amount must not exceed 1,000,000,000,000."
	MsgCurrencyRequired = "Please select a currency."
	MsgSameCurrency     = "From and to currencies cannot be the same."
)

// FieldErrors holds per-field validation messages. An empty string means the
// field is clear.
type FieldErrors struct {
	Amount       string
	FromCurrency string
	ToCurrency   string
}

// Valid is the single authoritative validity predicate: the form is valid
// exactly when no field carries a message.
func (e FieldErrors) Valid() bool {
	return e.Amount == "" && e.FromCurrency == "" && e.ToCurrency == ""
}

// ValidateSwapForm checks each field independently, then applies the
// cross-field rule: identical selected currencies mark both currency fields,
// overriding their cleared state.
func ValidateSwapForm(amount, from, to string) FieldErrors {
	var e FieldErrors

	v, err := strconv.ParseFloat(amount, 64)
	switch {
	case amount == "":
		e.Amount = MsgAmountRequired
	case err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0:
		e.Amount = MsgAmountPositive
	case v > MaxSendAmount:
		e.Amount = MsgAmountCeiling
	}

	if from == "" {
		e.FromCurrency = MsgCurrencyRequired
	}
	if to == "" {
		e.ToCurrency = MsgCurrencyRequired
	}

	if from != "" && to != "" && from == to {
		e.FromCurrency = MsgSameCurrency
		e.ToCurrency = MsgSameCurrency
	}

	return e
}
