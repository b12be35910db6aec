package service

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/docstore"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCustomer    = "customer:get"
	cacheGetAllCustomer = "customer:gets"
	cacheCountCustomer  = "customer:count"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (string, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return constant.Empty, fmt.Errorf("failed to create customer: %w", err)
	}

	s.invalidate(ctx)

	return id, nil
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list customers")

		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	res = make([]dto.CustomerResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save customers to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save customer count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return res, failure.MissingIDError
	}

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	res.FromModel(customer)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save customer to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return failure.MissingIDError
	}

	if req == (dto.UpdateCustomerRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("customer not found")

		return failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.Fields(), id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return failure.NotFound("customer not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
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
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("customer not found")

		return failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return failure.NotFound("customer not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.evict(ctx, id)

	return nil
}

func (s *serviceImpl) evict(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetCustomer, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete customer from cache")
	}

	s.invalidate(ctx)
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCustomer)
	shared.InvalidateCaches(ctx, s.cache, cacheCountCustomer)
}
