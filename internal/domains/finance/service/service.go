package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/finance/model"
	"hotel/internal/domains/finance/model/dto"
	"hotel/internal/domains/finance/repository"
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
	cacheGetTransaction     = "transaction:get"
	cacheGetAllTransaction  = "transaction:gets"
	cacheCountTransaction   = "transaction:count"
	cacheSummaryTransaction = "transaction:summary"
)

type Transaction interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (string, error)
	List(ctx context.Context) ([]dto.TransactionResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTransactionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TransactionResponse, error)
	Update(ctx context.Context, req dto.UpdateTransactionRequest, id string) error
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, req dto.SummaryRequest) (dto.SummaryResponse, error)
	Options() dto.OptionsResponse
}

type serviceImpl struct {
	repo  repository.Transaction
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Transaction, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Transaction {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTransactionRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create transaction")

		return constant.Empty, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.invalidate(ctx)

	return id, nil
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list transactions")

		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	res = make([]dto.TransactionResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transactions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save transactions to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save transaction count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return res, failure.MissingIDError
	}

	cacheKey := shared.BuildCacheKey(cacheGetTransaction, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transaction")

		return res, nil
	}

	transaction, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transaction")

		return res, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.ID == constant.Empty {
		return res, failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	res.FromModel(transaction)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save transaction to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTransactionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return failure.MissingIDError
	}

	if req == (dto.UpdateTransactionRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if transaction exists")

		return fmt.Errorf("failed to check if transaction exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("transaction not found")

		return failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.Fields(), id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return failure.NotFound("transaction not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update transaction")

		return fmt.Errorf("failed to update transaction: %w", err)
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
		log.Error().Err(err).Msg("failed to check if transaction exists")

		return fmt.Errorf("failed to check if transaction exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("transaction not found")

		return failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return failure.NotFound("transaction not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete transaction")

		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.evict(ctx, id)

	return nil
}

// Summary totals income and expense over the ledger, optionally bounded by
// transaction date. Transactions whose date does not parse only count when
// the range is open on both ends.
func (s *serviceImpl) Summary(ctx context.Context, req dto.SummaryRequest) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	inRange, err := dateRange(req)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheSummaryTransaction, req.From, req.To)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transaction summary")

		return res, nil
	}

	transactions, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list transactions")

		return res, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	var totals model.Totals

	for _, transaction := range transactions {
		if inRange(transaction.Date) {
			totals.Add(transaction)
		}
	}

	res.FromTotals(req, totals)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save transaction summary to cache")
	}

	return res, nil
}

func dateRange(req dto.SummaryRequest) (func(string) bool, error) {
	if req.From == constant.Empty && req.To == constant.Empty {
		return func(string) bool { return true }, nil
	}

	var from, to time.Time

	if req.From != constant.Empty {
		parsed, err := timezone.ParseDay(req.From)
		if err != nil {
			return nil, failure.BadRequestFromString("from must be a YYYY-MM-DD date") // nolint:wrapcheck
		}

		from = parsed
	}

	if req.To != constant.Empty {
		parsed, err := timezone.ParseDay(req.To)
		if err != nil {
			return nil, failure.BadRequestFromString("to must be a YYYY-MM-DD date") // nolint:wrapcheck
		}

		to = parsed
	}

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, failure.BadRequestFromString("from must not be after to") // nolint:wrapcheck
	}

	return func(value string) bool {
		day, err := timezone.ParseDay(value)
		if err != nil {
			return false
		}

		if !from.IsZero() && day.Before(from) {
			return false
		}

		return to.IsZero() || !day.After(to)
	}, nil
}

func (s *serviceImpl) Options() dto.OptionsResponse {
	return dto.OptionsResponse{
		Types:      model.TransactionTypes.Options(),
		Categories: model.Categories.Options(),
	}
}

func (s *serviceImpl) evict(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetTransaction, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete transaction from cache")
	}

	s.invalidate(ctx)
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllTransaction)
	shared.InvalidateCaches(ctx, s.cache, cacheCountTransaction)
	shared.InvalidateCaches(ctx, s.cache, cacheSummaryTransaction)
}
