package application

import (
	"context"
	"sync"
	"time"

	"cryptoswap-service/internal/domain"
)

// DefaultConfirmDelay is how long a submitted swap stays pending before the
// simulated confirmation completes.
const DefaultConfirmDelay = 2 * time.Second

type SwapService struct {
	prices       PriceSource
	swaps        SwapRepo
	idem         IdempotencyStore
	clock        Clock
	idgen        IDGen
	confirmAfter time.Duration

	mu    sync.RWMutex
	state FormState
	book  domain.PriceBook
}

type Option func(*SwapService)

func WithClock(c Clock) Option { return func(s *SwapService) { s.clock = c } }
func WithIDGen(g IDGen) Option { return func(s *SwapService) { s.idgen = g } }
func WithConfirmDelay(d time.Duration) Option {
	return func(s *SwapService) { s.confirmAfter = d }
}

func NewSwapService(prices PriceSource, swaps SwapRepo, idem IdempotencyStore, opts ...Option) *SwapService {
	s := &SwapService{
		prices:       prices,
		swaps:        swaps,
		idem:         idem,
		state:        StateLoading,
		confirmAfter: DefaultConfirmDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.idgen == nil {
		s.idgen = defaultIDGen{}
	}
	if s.idem == nil {
		s.idem = NoopIdempotency{}
	}
	return s
}

// LoadPrices performs the one-shot feed load. On success the service becomes
// Ready; on failure it becomes Failed and stays that way. An empty feed is a
// success with no selectable currencies.
func (s *SwapService) LoadPrices(ctx context.Context) error {
	quotes, err := s.prices.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		return err
	}
	s.book = domain.BuildPriceBook(quotes)
	s.state = StateReady
	return nil
}

// State reports the current form lifecycle state.
func (s *SwapService) State() FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Book returns the loaded price book, or an error describing why it is not
// available yet (or never will be).
func (s *SwapService) Book() (domain.PriceBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.state {
	case StateReady:
		return s.book, nil
	case StateFailed:
		return nil, ErrPricesUnavailable
	default:
		return nil, ErrNotReady
	}
}

// ListCurrencies returns the selectable currencies derived from the feed.
func (s *SwapService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	book, err := s.Book()
	if err != nil {
		return nil, err
	}
	return book.Currencies(), nil
}

// QuoteResult mirrors the swap form after an input change: the computed
// outputs plus the per-field validation messages.
type QuoteResult struct {
	Conversion domain.Conversion
	Errors     domain.FieldErrors
}

// Valid reports whether a submission would be accepted.
func (q QuoteResult) Valid() bool { return q.Errors.Valid() }

// Quote recomputes outputs and validation for the given inputs. Validation
// failures are data, not errors; only an unloaded price feed is an error.
func (s *SwapService) Quote(ctx context.Context, amount, from, to string) (QuoteResult, error) {
	book, err := s.Book()
	if err != nil {
		return QuoteResult{}, err
	}
	return QuoteResult{
		Conversion: book.Convert(amount, from, to),
		Errors:     domain.ValidateSwapForm(amount, from, to),
	}, nil
}

// Submit validates and records a swap. The swap is created pending and is
// confirmed by the background worker once the fixed delay has elapsed. The
// returned field errors are populated when err is ErrBadRequest.
func (s *SwapService) Submit(ctx context.Context, amount, from, to string, idemKey *string) (domain.Swap, domain.FieldErrors, error) {
	book, err := s.Book()
	if err != nil {
		return domain.Swap{}, domain.FieldErrors{}, err
	}

	fieldErrs := domain.ValidateSwapForm(amount, from, to)
	if !fieldErrs.Valid() {
		return domain.Swap{}, fieldErrs, ErrBadRequest
	}
	if _, ok := book.Lookup(from); !ok {
		return domain.Swap{}, fieldErrs, domain.ErrUnsupportedCurrency
	}
	if _, ok := book.Lookup(to); !ok {
		return domain.Swap{}, fieldErrs, domain.ErrUnsupportedCurrency
	}

	if idemKey != nil && *idemKey != "" {
		ok, err := s.idem.TryReserve(ctx, *idemKey)
		if err != nil {
			return domain.Swap{}, fieldErrs, err
		}
		if !ok {
			return domain.Swap{}, fieldErrs, ErrConflict
		}
	}

	conv := book.Convert(amount, from, to)
	swap := domain.Swap{
		ID:              s.idgen.NewID(),
		FromCurrency:    from,
		ToCurrency:      to,
		AmountToSend:    amount,
		AmountToReceive: conv.AmountToReceive,
		ExchangeRate:    conv.ExchangeRate,
		Status:          domain.SwapStatusPending,
		SubmittedAt:     s.clock.Now(),
	}
	if err := s.swaps.Create(ctx, swap); err != nil {
		return domain.Swap{}, fieldErrs, err
	}
	return swap, fieldErrs, nil
}

// GetSwap returns a submitted swap by id.
func (s *SwapService) GetSwap(ctx context.Context, id string) (domain.Swap, error) {
	return s.swaps.GetByID(ctx, id)
}

// ConfirmDelay is the fixed delay between submission and confirmation.
func (s *SwapService) ConfirmDelay() time.Duration { return s.confirmAfter }
