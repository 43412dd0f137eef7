package inmem

import (
	"context"
	"sync"
	"time"

	"cryptoswap-service/internal/application"
	"cryptoswap-service/internal/domain"
)

// SwapRepo keeps submitted swaps in process memory. Swap state is ephemeral;
// a restart loses it, which is the intended behavior.
type SwapRepo struct {
	mu    sync.RWMutex
	swaps map[string]domain.Swap
}

var _ application.SwapRepo = (*SwapRepo)(nil)

func NewSwapRepo() *SwapRepo {
	return &SwapRepo{swaps: map[string]domain.Swap{}}
}

func (r *SwapRepo) Create(_ context.Context, s domain.Swap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.swaps[s.ID] = s
	return nil
}

func (r *SwapRepo) GetByID(_ context.Context, id string) (domain.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.swaps[id]
	if !ok {
		return domain.Swap{}, domain.ErrNotFound
	}
	return s, nil
}

// ListPendingBefore returns pending swaps submitted at or before cutoff.
func (r *SwapRepo) ListPendingBefore(_ context.Context, cutoff time.Time) ([]domain.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Swap
	for _, s := range r.swaps {
		if s.Status == domain.SwapStatusPending && !s.SubmittedAt.After(cutoff) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SwapRepo) MarkConfirmed(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.swaps[id]
	if !ok {
		return domain.ErrNotFound
	}
	if s.Status == domain.SwapStatusConfirmed {
		return nil
	}
	s.Status = domain.SwapStatusConfirmed
	s.ConfirmedAt = &at
	r.swaps[id] = s
	return nil
}
