package domain

// SwapState is the transient state of the swap form. It is never persisted;
// it exists only for the lifetime of a form interaction.
type SwapState struct {
	AmountToSend    string
	FromCurrency    *Currency
	ToCurrency      *Currency
	AmountToReceive string
	ExchangeRate    float64
}

// Recompute derives the output fields from the current inputs against the
// given price book. Invariant: the rate is non-zero only when both currencies
// are selected, distinct and priced; otherwise the rate is 0 and the receive
// amount is ZeroReceive.
func (s SwapState) Recompute(pb PriceBook) SwapState {
	conv := pb.Convert(s.AmountToSend, codeOf(s.FromCurrency), codeOf(s.ToCurrency))
	s.AmountToReceive = conv.AmountToReceive
	s.ExchangeRate = conv.ExchangeRate
	return s
}

// Flip exchanges the from/to selection and recomputes. Flipping twice
// restores the original state.
func (s SwapState) Flip(pb PriceBook) SwapState {
	s.FromCurrency, s.ToCurrency = s.ToCurrency, s.FromCurrency
	return s.Recompute(pb)
}

// Validate runs the form validator over the current inputs.
func (s SwapState) Validate() FieldErrors {
	return ValidateSwapForm(s.AmountToSend, codeOf(s.FromCurrency), codeOf(s.ToCurrency))
}

func codeOf(c *Currency) string {
	if c == nil {
		return ""
	}
	return c.Code
}
