package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/docstore"
	"hotel/shared/dto"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

// reserved fields are owned by the document store and never written by a record.
var reserved = []string{constant.FieldID, constant.FieldCreatedAt}

// Repository binds a record type to one collection. Records travel through
// their json field names; the document key surfaces as id and the server
// creation stamp as createdAt. Filtering, sorting and paging happen here
// over the full collection.
type Repository[T any] struct {
	store      docstore.Store
	otel       otel.Otel
	collection string
	entitas    string
}

func NewRepository[T any](entitasName, collection string, store docstore.Store, otl otel.Otel) Repository[T] {
	return Repository[T]{
		store:      store,
		otel:       otl,
		collection: collection,
		entitas:    entitasName,
	}
}

type entry[T any] struct {
	fields map[string]any
	model  T
}

func (repo *Repository[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation)
}

func encode(model any) (map[string]any, error) {
	raw, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	fields := map[string]any{}
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	for _, name := range reserved {
		delete(fields, name)
	}

	return fields, nil
}

func flatten(doc docstore.Document) map[string]any {
	fields := maps.Clone(doc.Fields)
	if fields == nil {
		fields = map[string]any{}
	}

	fields[constant.FieldID] = doc.Key
	fields[constant.FieldCreatedAt] = doc.CreatedAt

	return fields
}

func decode[T any](fields map[string]any) (T, error) {
	var model T

	raw, err := json.Marshal(fields)
	if err != nil {
		return model, fmt.Errorf("failed to decode record: %w", err)
	}

	if err = json.Unmarshal(raw, &model); err != nil {
		return model, fmt.Errorf("failed to decode record: %w", err)
	}

	return model, nil
}

// entries fetches the collection and keeps the documents matching filter.
// Documents whose fields do not fit T are skipped so one malformed document
// cannot hide the rest of the collection, and every reader sees the same set.
func (repo *Repository[T]) entries(ctx context.Context, filter dto.FilterGroup) ([]entry[T], error) {
	docs, err := repo.store.List(ctx, repo.collection)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list data (%s): %w", repo.entitas, err)
	}

	res := make([]entry[T], 0, len(docs))

	for _, doc := range docs {
		fields := flatten(doc)
		if !filter.Match(fields) {
			continue
		}

		model, err := decode[T](fields)
		if err != nil {
			log.Warn().Err(err).
				Str("collection", repo.collection).
				Any("id", fields[constant.FieldID]).
				Msg("skipping undecodable document")

			continue
		}

		res = append(res, entry[T]{fields: fields, model: model})
	}

	return res, nil
}

func models[T any](entries []entry[T]) []T {
	res := make([]T, 0, len(entries))
	for _, item := range entries {
		res = append(res, item.model)
	}

	return res
}

// Insert adds the record and returns the key assigned by the store.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	fields, err := encode(model)
	if err != nil {
		scope.TraceError(err)

		return constant.Empty, err
	}

	key, err := repo.store.Add(ctx, repo.collection, fields)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return key, nil
}

// List returns the whole collection in store order.
func (repo *Repository[T]) List(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("List"))
	defer scope.End()

	entries, err := repo.entries(ctx, dto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	return models(entries), nil
}

func (repo *Repository[T]) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	_, found, err := repo.store.Get(ctx, repo.collection, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return found, nil
}

// Get returns the zero record when id does not exist.
func (repo *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	var model T

	doc, found, err := repo.store.Get(ctx, repo.collection, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	if !found {
		return model, nil
	}

	model, err = decode[T](flatten(doc))
	if err != nil {
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// GetAll filters, sorts and pages the collection. Without SortBy the store
// order is kept.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	entries, err := repo.entries(ctx, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	if params.SortBy != constant.Empty {
		desc := strings.EqualFold(params.SortDir, dto.SortDirDesc)

		slices.SortStableFunc(entries, func(a, b entry[T]) int {
			cmp := dto.Compare(a.fields[params.SortBy], b.fields[params.SortBy])
			if desc {
				return -cmp
			}

			return cmp
		})
	}

	start, end := params.Window(len(entries))

	return models(entries[start:end]), nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()

	entries, err := repo.entries(ctx, filter)
	if err != nil {
		scope.TraceError(err)

		return 0, err
	}

	return len(entries), nil
}

// Update merges fields into the document at id. Reserved fields are ignored.
func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()

	patch, err := encode(fields)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	if err = repo.store.Update(ctx, repo.collection, id, patch); err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			logger.ErrorWithStack(err)
		}

		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) Delete(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()

	if err := repo.store.Delete(ctx, repo.collection, id); err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			logger.ErrorWithStack(err)
		}

		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return nil
}
