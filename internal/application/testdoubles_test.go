package application

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"cryptoswap-service/internal/domain"
)

var ErrFeed = errors.New("feed error")

type fakePriceSource struct {
	quotes []domain.PriceQuote
	err    error
	calls  int
}

func (f *fakePriceSource) Fetch(context.Context) ([]domain.PriceQuote, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.quotes, nil
}

type fakeSwapRepo struct {
	mu    sync.Mutex
	swaps map[string]domain.Swap
	err   error
}

func (f *fakeSwapRepo) Create(_ context.Context, s domain.Swap) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.swaps == nil {
		f.swaps = map[string]domain.Swap{}
	}
	f.swaps[s.ID] = s
	return nil
}

func (f *fakeSwapRepo) GetByID(_ context.Context, id string) (domain.Swap, error) {
	if f.err != nil {
		return domain.Swap{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.swaps[id]
	if !ok {
		return domain.Swap{}, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSwapRepo) ListPendingBefore(_ context.Context, cutoff time.Time) ([]domain.Swap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Swap
	for _, s := range f.swaps {
		if s.Status == domain.SwapStatusPending && !s.SubmittedAt.After(cutoff) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSwapRepo) MarkConfirmed(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.swaps[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = domain.SwapStatusConfirmed
	s.ConfirmedAt = &at
	f.swaps[id] = s
	return nil
}

type fakeIdem struct{ seen map[string]bool }

func (f *fakeIdem) TryReserve(_ context.Context, k string) (bool, error) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[k] {
		return false, nil
	}
	f.seen[k] = true
	return true, nil
}

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return "swap-" + strconv.Itoa(g.n)
}

func testQuotes() []domain.PriceQuote {
	return []domain.PriceQuote{
		{Currency: "BTC", Date: "2024-06-25T00:00:00.000Z", Price: 50000},
		{Currency: "ETH", Date: "2024-06-25T00:00:00.000Z", Price: 2500},
		{Currency: "USDC", Date: "2024-06-25T00:00:00.000Z", Price: 1},
	}
}

func readyService(opts ...Option) (*SwapService, *fakeSwapRepo) {
	repo := &fakeSwapRepo{swaps: map[string]domain.Swap{}}
	src := &fakePriceSource{quotes: testQuotes()}
	svc := NewSwapService(src, repo, &fakeIdem{}, opts...)
	_ = svc.LoadPrices(context.Background())
	return svc, repo
}

func strPtr(s string) *string { return &s }
