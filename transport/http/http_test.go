package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/handlers/dashboard"
	"hotel/internal/manager"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/metrics"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
)

func newServer(t *testing.T) *HTTP {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://admin.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	ot := mocks.NewOtel()
	handlers := router.DomainHandlers{
		Dashboard: dashboard.New(manager.NewShell(), ot),
	}

	return New(cfg, router.New(handlers), middleware.NewAppMiddleware(ot, cfg, cache.NewRedisCache(client, ot)))
}

func get(h *HTTP, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHTTP_Health(t *testing.T) {
	h := newServer(t)

	rec := get(h, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, rec.Body.String())

	h.state.Store(int32(ServerStateInGracePeriod))

	assert.Equal(t, http.StatusServiceUnavailable, get(h, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, get(h, "/v1/dashboard", nil).Code, "requests are served during the grace period")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	rec = get(h, "/v1/dashboard", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)
}

func TestHTTP_Metrics(t *testing.T) {
	metrics.Register()

	h := newServer(t)

	get(h, "/v1/dashboard", nil)

	rec := get(h, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "go_goroutines"))
	assert.Contains(t, body, `method="GET",route="/v1/dashboard`)
}

func TestHTTP_CORSAndRequestID(t *testing.T) {
	h := newServer(t)

	rec := get(h, "/v1/dashboard", map[string]string{"Origin": "https://admin.example.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = get(h, "/v1/dashboard", map[string]string{"Origin": "https://elsewhere.example.com"})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTP_UnknownRoute(t *testing.T) {
	h := newServer(t)

	assert.Equal(t, http.StatusNotFound, get(h, "/v1/invoices", nil).Code)
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	h := newServer(t)

	rec := get(h, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Hotel Admin API")
	assert.Contains(t, body, `"/v1/bookings/{id}"`)
	assert.Contains(t, body, `"/v1/dashboard/{menu}/records"`)
}

func TestHTTP_SwaggerHiddenInProduction(t *testing.T) {
	h := newServer(t)
	h.Config.Server.Env = constant.ServerEnvProduction

	assert.Equal(t, http.StatusNotFound, get(h, "/swagger/doc.json", nil).Code)
}
