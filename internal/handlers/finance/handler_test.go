package finance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/finance/model/dto"
	"hotel/internal/domains/finance/repository"
	"hotel/internal/domains/finance/service"
	"hotel/internal/handlers/finance"
	"hotel/shared/cache"
	"hotel/shared/docstore"
	gDto "hotel/shared/dto"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	ot := mocks.NewOtel()
	svc := service.New(repository.New(docstore.NewMemory(), ot), cfg, cache.NewRedisCache(client, ot), ot)
	handler := finance.New(svc, ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())

	return envelope.Data
}

func seed(t *testing.T, router http.Handler) []string {
	t.Helper()

	ids := []string{}

	for _, body := range []string{
		`{"type":"income","amount":"5000","category":"accommodation","description":"room 204","date":"2024-03-01"}`,
		`{"type":"expense","amount":1200.50,"category":"utilities","description":"electricity","date":"2024-03-05"}`,
		`{"type":"income","amount":"800","category":"other","description":"laundry","date":"2024-04-10"}`,
	} {
		rec := do(t, router, http.MethodPost, "/transactions", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		ids = append(ids, decode[gDto.CreatedResponse](t, rec).ID)
	}

	return ids
}

func TestFinanceHandler_Summary(t *testing.T) {
	router := newRouter(t)
	ids := seed(t, router)

	rec := do(t, router, http.MethodGet, "/transactions/summary", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	all := decode[dto.SummaryResponse](t, rec)
	assert.Equal(t, "5800", all.Income.String())
	assert.Equal(t, "1200.5", all.Expense.String())
	assert.Equal(t, "4599.5", all.Net.String())
	assert.Equal(t, 3, all.Count)

	rec = do(t, router, http.MethodGet, "/transactions/summary?from=2024-03-01&to=2024-03-31", "")
	require.Equal(t, http.StatusOK, rec.Code)

	march := decode[dto.SummaryResponse](t, rec)
	assert.Equal(t, "5000", march.Income.String())
	assert.Equal(t, 2, march.Count)
	assert.Equal(t, "2024-03-01", march.From)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, "/transactions/"+ids[0], "").Code)

	rec = do(t, router, http.MethodGet, "/transactions/summary?from=2024-03-01&to=2024-03-31", "")
	assert.Equal(t, "0", decode[dto.SummaryResponse](t, rec).Income.String(), "cached summaries are invalidated by mutations")
}

func TestFinanceHandler_SummaryRejectsBadRange(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodGet, "/transactions/summary?from=01/03/2024", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceHandler_Options(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodGet, "/transactions/options", "")
	require.Equal(t, http.StatusOK, rec.Code)

	options := decode[dto.OptionsResponse](t, rec)
	assert.Len(t, options.Types, 2)
	assert.Len(t, options.Categories, 5)
}

func TestFinanceHandler_Filters(t *testing.T) {
	router := newRouter(t)
	seed(t, router)

	rec := do(t, router, http.MethodGet, "/transactions?type=income", "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[dto.GetTransactionsResponse](t, rec)
	assert.Equal(t, 2, page.TotalData)

	for _, transaction := range page.Transactions {
		assert.Equal(t, "รายรับ", transaction.TypeLabel)
	}
}
