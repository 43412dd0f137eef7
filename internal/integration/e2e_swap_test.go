package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cryptoswap-service/internal/application"
	httpserver "cryptoswap-service/internal/infrastructure/http"
	"cryptoswap-service/internal/infrastructure/inmem"
	"cryptoswap-service/internal/infrastructure/provider"
	redisstore "cryptoswap-service/internal/infrastructure/redis"
	"cryptoswap-service/internal/infrastructure/worker"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const feedBody = `[
  {"currency":"BTC","date":"2024-06-25T00:00:00.000Z","price":50000},
  {"currency":"ETH","date":"2024-06-25T00:00:00.000Z","price":2500},
  {"currency":"USDC","date":"2024-06-25T00:00:00.000Z","price":1}
]`

// Full stack: real feed client against an httptest feed, Redis-backed
// idempotency via miniredis, the in-memory swap store and a fast confirmer.
func TestSwapLifecycle(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer feed.Close()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	swaps := inmem.NewSwapRepo()
	svc := application.NewSwapService(
		&provider.PriceFeedProvider{URL: feed.URL, Client: feed.Client()},
		swaps,
		redisstore.New(rdb, time.Hour),
		application.WithConfirmDelay(50*time.Millisecond),
	)
	require.NoError(t, svc.LoadPrices(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go (&worker.Confirmer{Swaps: swaps, Delay: 50 * time.Millisecond, PollEvery: 10 * time.Millisecond}).Start(ctx)

	api := httptest.NewServer(httpserver.NewRouter(httpserver.NewServer(svc, "/icons")))
	defer api.Close()

	// currencies are selectable
	resp, err := http.Get(api.URL + "/currencies")
	require.NoError(t, err)
	var currencies []struct {
		Code    string `json:"code"`
		IconURL string `json:"icon_url"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&currencies))
	resp.Body.Close()
	require.Len(t, currencies, 3)

	// quote matches the fixed scenario
	quote := postJSON(t, api.URL+"/swap/quote", `{"amount_to_send":"2","from_currency":"BTC","to_currency":"ETH"}`, nil)
	defer quote.Body.Close()
	require.Equal(t, http.StatusOK, quote.StatusCode)
	var q struct {
		AmountToReceive string  `json:"amount_to_receive"`
		ExchangeRate    float64 `json:"exchange_rate"`
		Valid           bool    `json:"valid"`
	}
	require.NoError(t, json.NewDecoder(quote.Body).Decode(&q))
	require.True(t, q.Valid)
	require.Equal(t, "40.00000000", q.AmountToReceive)
	require.InDelta(t, 20.0, q.ExchangeRate, 1e-9)

	// submit with an idempotency key
	submit := postJSON(t, api.URL+"/swaps", `{"amount_to_send":"2","from_currency":"BTC","to_currency":"ETH"}`,
		map[string]string{"X-Idempotency-Key": "e2e-1"})
	defer submit.Body.Close()
	require.Equal(t, http.StatusAccepted, submit.StatusCode)
	var sub struct {
		SwapID string `json:"swap_id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(submit.Body).Decode(&sub))
	require.Equal(t, "pending", sub.Status)

	// duplicate submission is rejected
	dup := postJSON(t, api.URL+"/swaps", `{"amount_to_send":"2","from_currency":"BTC","to_currency":"ETH"}`,
		map[string]string{"X-Idempotency-Key": "e2e-1"})
	defer dup.Body.Close()
	require.Equal(t, http.StatusConflict, dup.StatusCode)

	// the confirmer completes the swap after the delay
	require.Eventually(t, func() bool {
		r, err := http.Get(api.URL + "/swaps/" + sub.SwapID)
		if err != nil {
			return false
		}
		defer r.Body.Close()
		var got struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			return false
		}
		return got.Status == "confirmed"
	}, 2*time.Second, 20*time.Millisecond)
}

func postJSON(t *testing.T, url, body string, header map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
