package ratelimit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	clk := clock.NewFixedClock(start)
	handler := Middleware(NewMemoryStore(clk), 5, time.Minute, clk)(okHandler())

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/validate", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	for i := 1; i <= 5; i++ {
		rr := send("10.0.0.1:5000")
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	rr := send("10.0.0.1:5001")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
	assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, rr.Body.String(), `"kind":"rate_limited"`)

	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000").Code)

	clk.Add(time.Minute)
	rr = send("10.0.0.1:5000")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "4", rr.Header().Get("X-RateLimit-Remaining"))
}

func TestMiddleware_StoreErrorFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	store.EXPECT().Allow(gomock.Any(), "10.0.0.1", 5, time.Minute).Return(Result{}, errors.New("redis down"))

	clk := clock.NewFixedClock(start)
	handler := Middleware(store, 5, time.Minute, clk)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.7"
	assert.Equal(t, "192.168.1.7", clientKey(req))
	req.RemoteAddr = "[::1]:8080"
	assert.Equal(t, "::1", clientKey(req))
}
