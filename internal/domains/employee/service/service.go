package service

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/docstore"
	gDto "hotel/shared/dto"
	"hotel/shared/enum"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetEmployee    = "employee:get"
	cacheGetAllEmployee = "employee:gets"
	cacheCountEmployee  = "employee:count"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (string, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEmployeesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, id string) error
	Delete(ctx context.Context, id string) error
	Positions() []enum.Option
}

type serviceImpl struct {
	repo  repository.Employee
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Employee, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return constant.Empty, fmt.Errorf("failed to create employee: %w", err)
	}

	s.invalidate(ctx)

	return id, nil
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list employees")

		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	res = make([]dto.EmployeeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEmployee, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employees")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save employees to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEmployee, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save employee count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return res, failure.MissingIDError
	}

	cacheKey := shared.BuildCacheKey(cacheGetEmployee, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employee")

		return res, nil
	}

	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return res, failure.NotFound("employee not found") // nolint:wrapcheck
	}

	res.FromModel(employee)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save employee to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return failure.MissingIDError
	}

	if req == (dto.UpdateEmployeeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("employee not found")

		return failure.NotFound("employee not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.Fields(), id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return failure.NotFound("employee not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update employee")

		return fmt.Errorf("failed to update employee: %w", err)
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
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("employee not found")

		return failure.NotFound("employee not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return failure.NotFound("employee not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.evict(ctx, id)

	return nil
}

// Positions lists the selectable positions with their display titles.
func (s *serviceImpl) Positions() []enum.Option {
	return model.Positions.Options()
}

func (s *serviceImpl) evict(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetEmployee, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete employee from cache")
	}

	s.invalidate(ctx)
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllEmployee)
	shared.InvalidateCaches(ctx, s.cache, cacheCountEmployee)
}
