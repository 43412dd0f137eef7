package worker

import (
	"context"
	"time"

	"cryptoswap-service/internal/application"

	"go.uber.org/zap"
)

var _ application.Worker = (*Confirmer)(nil)

// Confirmer completes pending swaps once their fixed confirmation delay has
// elapsed. No transaction happens; confirmation is a timed acknowledgement.
// If the process stops mid-delay the pending swap is simply discarded with it.
type Confirmer struct {
	Swaps application.SwapRepo
	Clock application.Clock

	Delay     time.Duration
	PollEvery time.Duration
	Log       *zap.Logger
}

func (w *Confirmer) Start(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	if w.Delay <= 0 {
		w.Delay = application.DefaultConfirmDelay
	}
	if w.PollEvery <= 0 {
		w.PollEvery = 250 * time.Millisecond
	}

	t := time.NewTicker(w.PollEvery)
	defer t.Stop()

	log.Info("confirmer_started", zap.Duration("delay", w.Delay), zap.Duration("poll_every", w.PollEvery))
	for {
		select {
		case <-ctx.Done():
			log.Info("confirmer_stopped")
			return
		case <-t.C:
			w.tick(ctx, log)
		}
	}
}

func (w *Confirmer) tick(ctx context.Context, log *zap.Logger) {
	now := w.now()
	due, err := w.Swaps.ListPendingBefore(ctx, now.Add(-w.Delay))
	if err != nil {
		log.Warn("list_pending_failed", zap.Error(err))
		return
	}
	for _, s := range due {
		if err := w.Swaps.MarkConfirmed(ctx, s.ID, now); err != nil {
			log.Warn("confirm_failed", zap.String("id", s.ID), zap.Error(err))
			continue
		}
		log.Info("swap_confirmed",
			zap.String("id", s.ID),
			zap.String("from", s.FromCurrency),
			zap.String("to", s.ToCurrency),
			zap.String("amount", s.AmountToSend),
		)
	}
}

func (w *Confirmer) now() time.Time {
	if w.Clock != nil {
		return w.Clock.Now()
	}
	return time.Now().UTC()
}
