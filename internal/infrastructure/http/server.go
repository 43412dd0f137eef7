package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"time"

	"cryptoswap-service/internal/application"
	"cryptoswap-service/internal/domain"
)

// PricesUnavailableMsg is the single generic message for a failed feed load.
const PricesUnavailableMsg = "Failed to load prices. Please try again later."

type Server struct {
	svc      *application.SwapService
	iconBase string
}

func NewServer(svc *application.SwapService, iconBase string) *Server {
	if iconBase == "" {
		iconBase = "/icons"
	}
	return &Server{svc: svc, iconBase: iconBase}
}

type currencyResp struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	PriceUSD float64 `json:"price_usd"`
	IconURL  string  `json:"icon_url"`
}

type swapFormReq struct {
	AmountToSend string `json:"amount_to_send"`
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
}

type fieldErrorsResp struct {
	Amount       string `json:"amount,omitempty"`
	FromCurrency string `json:"from_currency,omitempty"`
	ToCurrency   string `json:"to_currency,omitempty"`
}

type quoteResp struct {
	AmountToReceive string          `json:"amount_to_receive"`
	ExchangeRate    float64         `json:"exchange_rate"`
	Valid           bool            `json:"valid"`
	Errors          fieldErrorsResp `json:"errors"`
}

type swapResp struct {
	SwapID          string     `json:"swap_id"`
	FromCurrency    string     `json:"from_currency"`
	ToCurrency      string     `json:"to_currency"`
	AmountToSend    string     `json:"amount_to_send"`
	AmountToReceive string     `json:"amount_to_receive"`
	ExchangeRate    float64    `json:"exchange_rate"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
}

type submitResp struct {
	SwapID string `json:"swap_id"`
	Status string `json:"status"`
}

func (s *Server) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.ListCurrencies(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]currencyResp, 0, len(list))
	for _, c := range list {
		out = append(out, currencyResp{
			Code:     c.Code,
			Name:     c.Name,
			PriceUSD: c.PriceUSD,
			IconURL:  path.Join(s.iconBase, c.Code+".svg"),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) QuoteSwap(w http.ResponseWriter, r *http.Request) {
	var body swapFormReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	q, err := s.svc.Quote(r.Context(), body.AmountToSend, body.FromCurrency, body.ToCurrency)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResp{
		AmountToReceive: q.Conversion.AmountToReceive,
		ExchangeRate:    q.Conversion.ExchangeRate,
		Valid:           q.Valid(),
		Errors:          mapFieldErrors(q.Errors),
	})
}

func (s *Server) SubmitSwap(w http.ResponseWriter, r *http.Request) {
	var body swapFormReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var idemKey *string
	if k := r.Header.Get("X-Idempotency-Key"); k != "" {
		idemKey = &k
	}

	swap, fieldErrs, err := s.svc.Submit(r.Context(), body.AmountToSend, body.FromCurrency, body.ToCurrency, idemKey)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrBadRequest):
			writeJSON(w, http.StatusBadRequest, struct {
				Error  string          `json:"error"`
				Errors fieldErrorsResp `json:"errors"`
			}{Error: "validation failed", Errors: mapFieldErrors(fieldErrs)})
		case errors.Is(err, domain.ErrUnsupportedCurrency):
			writeError(w, http.StatusBadRequest, "unknown currency")
		case errors.Is(err, application.ErrConflict):
			writeError(w, http.StatusConflict, "duplicate submission")
		default:
			s.writeServiceError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusAccepted, submitResp{SwapID: swap.ID, Status: string(swap.Status)})
}

func (s *Server) GetSwap(w http.ResponseWriter, r *http.Request, id string) {
	swap, err := s.svc.GetSwap(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "swap not found")
			return
		}
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, swapResp{
		SwapID:          swap.ID,
		FromCurrency:    swap.FromCurrency,
		ToCurrency:      swap.ToCurrency,
		AmountToSend:    swap.AmountToSend,
		AmountToReceive: swap.AmountToReceive,
		ExchangeRate:    swap.ExchangeRate,
		Status:          string(swap.Status),
		SubmittedAt:     swap.SubmittedAt,
		ConfirmedAt:     swap.ConfirmedAt,
	})
}

// writeServiceError maps feed lifecycle errors; anything else is a 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, "prices are still loading")
	case errors.Is(err, application.ErrPricesUnavailable):
		writeError(w, http.StatusServiceUnavailable, PricesUnavailableMsg)
	default:
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func mapFieldErrors(e domain.FieldErrors) fieldErrorsResp {
	return fieldErrorsResp{
		Amount:       e.Amount,
		FromCurrency: e.FromCurrency,
		ToCurrency:   e.ToCurrency,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: msg})
}
