package booking

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var listFilters = map[string]string{
	model.FieldRoomNo:   gDto.FilterOperatorEq,
	model.FieldType:     gDto.FilterOperatorEq,
	model.FieldName:     gDto.FilterOperatorLike,
	model.FieldCheckIn:  gDto.FilterOperatorGreaterEq,
	model.FieldCheckOut: gDto.FilterOperatorLessEq,
}

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/all", handler.ListBookings)
		routerGroup.Get("/room-types", handler.GetRoomTypes)
		routerGroup.Post("/quote", handler.QuoteBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking stores a booking. The nightly rate defaults to the room
// type rate and the total is computed from the stay.
// @Summary Create a booking
// @Description Store a new booking and return its generated ID.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[gDto.CreatedResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created " + id)

	response.WithJSON(w, http.StatusCreated, gDto.CreatedResponse{ID: id})
}

// GetBookings returns one page of bookings matching the query filters.
// @Summary Get bookings
// @Description Retrieve one page of bookings with optional filters.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination and sort parameters"
// @Param roomNo query string false "Filter by room number"
// @Param type query string false "Filter by room type (Standard, Deluxe, Suite)"
// @Param name query string false "Filter by guest name (partial match)"
// @Param checkIn query string false "Check-in on or after (YYYY-MM-DD)"
// @Param checkOut query string false "Check-out on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Page of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetAll(ctx, queryParams, gDto.FilterFromQuery(r, listFilters))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// ListBookings returns the whole collection in store order.
// @Summary List all bookings
// @Description Retrieve the whole collection in store order.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.BookingResponse] "All bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/all [get]
func (handler *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	bookings, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetRoomTypes lists the room types with their nightly rates.
// @Summary Get room types
// @Description List the room types with their nightly rates.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomTypeResponse] "Room types"
// @Router /v1/bookings/room-types [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.RoomTypes())
}

// QuoteBooking prices a stay without storing it.
// @Summary Quote a booking
// @Description Price a stay without storing it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/quote [post]
func (handler *Handler) QuoteBooking(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteBooking")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.Quote(req))
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking
// @Description Retrieve a booking by its ID.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking applies a partial patch. Changing the room type resets the
// nightly rate unless the patch carries one.
// @Summary Update a booking
// @Description Apply a partial patch to a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated " + id)

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking
// @Description Delete a booking by its ID.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted " + id)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
