package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// The limiter must never take the API down with it: when redis is
// unreachable, every request passes through untouched.
func TestRateLimiterFailsOpenWhenRedisUnreachable(t *testing.T) {
	// Nothing listens on port 1, so every redis command fails immediately.
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
	})
	defer rdb.Close()

	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimiter(rdb, 1, time.Minute, 10*time.Minute, "ledger")(next)

	// Three requests against a limit of one: with redis down, none may be
	// counted, blocked, or decorated with quota headers.
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
		assert.Empty(t, rec.Header().Get("Retry-After"))
	}
	assert.Equal(t, 3, calls)
}
