package service

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/docstore"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (string, error)
	List(ctx context.Context) ([]dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	RoomTypes() []dto.RoomTypeResponse
	Quote(req dto.QuoteRequest) dto.QuoteResponse
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return constant.Empty, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx)

	return id, nil
}

// List returns the whole collection in store order. It never reads the
// cache so a refresh after a mutation observes that mutation.
func (s *serviceImpl) List(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	res = make([]dto.BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return res, failure.MissingIDError
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

// Update merges the patch onto the stored booking so the rate and total are
// recomputed from the resulting record.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return failure.MissingIDError
	}

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Str("id", id).Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	req.ApplyTo(&booking)

	if err = s.repo.Update(ctx, req.Fields(booking), id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.evict(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return failure.MissingIDError
	}

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.evict(ctx, id)

	return nil
}

func (s *serviceImpl) RoomTypes() []dto.RoomTypeResponse {
	return dto.RoomTypesResponse()
}

// Quote previews the rate and total a booking form would store.
func (s *serviceImpl) Quote(req dto.QuoteRequest) dto.QuoteResponse {
	booking := model.Booking{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	booking.SelectRoomType(req.Type)

	if req.PricePerNight != nil {
		booking.PricePerNight = *req.PricePerNight
	}

	booking.Recalculate()

	res := dto.QuoteResponse{
		Type:          booking.Type,
		TypeLabel:     model.RoomTypes.Label(booking.Type),
		PricePerNight: booking.PricePerNight,
		Total:         booking.Total,
	}

	checkIn, inErr := timezone.ParseCalendarDay(req.CheckIn)
	checkOut, outErr := timezone.ParseCalendarDay(req.CheckOut)

	if inErr == nil && outErr == nil {
		res.Nights = model.Nights(checkIn, checkOut)
	}

	return res
}

func (s *serviceImpl) evict(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	s.invalidate(ctx)
}

// invalidate runs before a mutation returns so the following read is fresh.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}
