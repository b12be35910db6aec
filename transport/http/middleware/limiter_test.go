package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
)

func newLimitedRouter(t *testing.T, server *miniredis.Miniredis, cfg *config.Config) http.Handler {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	ot := mocks.NewOtel()
	app := middleware.NewAppMiddleware(ot, cfg, cache.NewRedisCache(client, ot))

	r := chi.NewRouter()
	r.Use(app.RateLimit())
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func limiterConfig(maxRequests, burst int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60
	cfg.App.RateLimiter.FallbackBurst = burst

	return cfg
}

func ping(router http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, ip+", 10.0.0.1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit_Window(t *testing.T) {
	server := miniredis.RunT(t)
	router := newLimitedRouter(t, server, limiterConfig(3, 0))

	for i := range 3 {
		rec := ping(router, "203.0.113.7")
		require.Equal(t, http.StatusNoContent, rec.Code, "request %d", i+1)
		assert.Equal(t, "3", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, strconv.Itoa(2-i), rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	}

	assert.Equal(t, http.StatusNoContent, ping(router, "203.0.113.8").Code, "windows are per client")
	assert.Equal(t, http.StatusTooManyRequests, ping(router, "203.0.113.7").Code)

	server.FastForward(61 * time.Second)

	assert.Equal(t, http.StatusNoContent, ping(router, "203.0.113.7").Code)
}

func TestRateLimit_FallsBackWhenCacheIsDown(t *testing.T) {
	server := miniredis.RunT(t)
	router := newLimitedRouter(t, server, limiterConfig(100, 2))

	server.Close()

	assert.Equal(t, http.StatusNoContent, ping(router, "198.51.100.1").Code)
	assert.Equal(t, http.StatusNoContent, ping(router, "198.51.100.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(router, "198.51.100.1").Code)

	assert.Equal(t, http.StatusNoContent, ping(router, "198.51.100.2").Code, "buckets are per client")
}

func TestRateLimit_Disabled(t *testing.T) {
	server := miniredis.RunT(t)
	cfg := limiterConfig(1, 0)
	cfg.App.RateLimiter.Enable = false

	router := newLimitedRouter(t, server, cfg)

	for range 3 {
		assert.Equal(t, http.StatusNoContent, ping(router, "203.0.113.9").Code)
	}

	assert.Empty(t, server.Keys())
}
