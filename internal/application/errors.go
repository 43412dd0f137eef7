package application

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")

	// ErrNotReady: the price feed has not been loaded yet.
	ErrNotReady = errors.New("prices not loaded")
	// ErrPricesUnavailable: the one-shot feed load failed; terminal.
	ErrPricesUnavailable = errors.New("prices unavailable")
)
