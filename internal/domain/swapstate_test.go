package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapState_Recompute(t *testing.T) {
	t.Parallel()
	book := testBook()
	btc, _ := book.Lookup("BTC")
	eth, _ := book.Lookup("ETH")

	s := SwapState{AmountToSend: "2", FromCurrency: &btc, ToCurrency: &eth}.Recompute(book)
	require.InDelta(t, 20.0, s.ExchangeRate, 1e-9)
	require.Equal(t, "40.00000000", s.AmountToReceive)
}

func TestSwapState_Recompute_NoSelection(t *testing.T) {
	t.Parallel()
	s := SwapState{AmountToSend: "2"}.Recompute(testBook())
	require.Zero(t, s.ExchangeRate)
	require.Equal(t, ZeroReceive, s.AmountToReceive)
}

func TestSwapState_FlipIsInvolutive(t *testing.T) {
	t.Parallel()
	book := testBook()
	btc, _ := book.Lookup("BTC")
	eth, _ := book.Lookup("ETH")

	orig := SwapState{AmountToSend: "2", FromCurrency: &btc, ToCurrency: &eth}.Recompute(book)
	flipped := orig.Flip(book)
	require.Equal(t, "ETH", flipped.FromCurrency.Code)
	require.Equal(t, "BTC", flipped.ToCurrency.Code)
	require.InDelta(t, 0.05, flipped.ExchangeRate, 1e-9)

	back := flipped.Flip(book)
	require.Equal(t, orig, back)
}

func TestSwapState_Validate(t *testing.T) {
	t.Parallel()
	book := testBook()
	btc, _ := book.Lookup("BTC")

	e := SwapState{AmountToSend: "2", FromCurrency: &btc, ToCurrency: &btc}.Validate()
	require.Equal(t, MsgSameCurrency, e.FromCurrency)
	require.Equal(t, MsgSameCurrency, e.ToCurrency)

	e = SwapState{}.Validate()
	require.Equal(t, MsgAmountRequired, e.Amount)
	require.Equal(t, MsgCurrencyRequired, e.FromCurrency)
	require.Equal(t, MsgCurrencyRequired, e.ToCurrency)
}
