package booking_test

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
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/booking/service"
	"hotel/internal/handlers/booking"
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
	handler := booking.New(svc, ot)

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

const twoNights = `{"roomNo":"204","type":"Deluxe","name":"Anan","phoneNum":"0811111111","amount":2,"checkIn":"2024-03-01","checkOut":"2024-03-03"}`

func TestBookingHandler_Lifecycle(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/bookings", twoNights)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	id := decode[gDto.CreatedResponse](t, rec).ID
	require.NotEmpty(t, id)

	rec = do(t, router, http.MethodGet, "/bookings/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	stored := decode[dto.BookingResponse](t, rec)
	assert.Equal(t, "2000", stored.PricePerNight.String())
	assert.Equal(t, "4000", stored.Total.String())
	assert.Equal(t, 2, stored.Amount)

	rec = do(t, router, http.MethodPatch, "/bookings/"+id, `{"type":"Suite"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/bookings/"+id, "")
	stored = decode[dto.BookingResponse](t, rec)
	assert.Equal(t, "3000", stored.PricePerNight.String())
	assert.Equal(t, "6000", stored.Total.String(), "total follows the new room rate")

	rec = do(t, router, http.MethodGet, "/bookings?type=Suite", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[dto.GetBookingsResponse](t, rec).TotalData)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, "/bookings/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/bookings/"+id, "").Code)

	rec = do(t, router, http.MethodGet, "/bookings/all", "")
	assert.Empty(t, decode[[]dto.BookingResponse](t, rec))
}

func TestBookingHandler_Quote(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/bookings/quote", `{"type":"Standard","checkIn":"2024-03-01","checkOut":"2024-03-04"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	quote := decode[dto.QuoteResponse](t, rec)
	assert.Equal(t, "3", quote.Nights.String())
	assert.Equal(t, "3000", quote.Total.String())

	rec = do(t, router, http.MethodPost, "/bookings/quote", `{"type":"Penthouse","checkIn":"2024-03-01","checkOut":"2024-03-04"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/bookings/all", "")
	assert.Empty(t, decode[[]dto.BookingResponse](t, rec), "quotes are never stored")
}

func TestBookingHandler_RoomTypes(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodGet, "/bookings/room-types", "")
	require.Equal(t, http.StatusOK, rec.Code)

	types := decode[[]dto.RoomTypeResponse](t, rec)
	require.Len(t, types, 3)
	assert.Equal(t, "Suite", string(types[2].Code))
	assert.Equal(t, "3000", types[2].PricePerNight.String())
}
