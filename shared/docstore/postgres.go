package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/shared/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const backendPostgres = "postgres"

const (
	queryList = `SELECT key, fields, created_at FROM documents
		WHERE collection = $1 ORDER BY created_at, key`
	queryGet = `SELECT key, fields, created_at FROM documents
		WHERE collection = $1 AND key = $2`
	queryInsert = `INSERT INTO documents (collection, key, fields)
		VALUES ($1, $2, $3)`
	queryUpdate = `UPDATE documents SET fields = fields || $3::jsonb
		WHERE collection = $1 AND key = $2`
	queryDelete = `DELETE FROM documents WHERE collection = $1 AND key = $2`
)

type row struct {
	Key       string    `db:"key"`
	Fields    []byte    `db:"fields"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) document() (Document, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(r.Fields, &fields); err != nil {
		return Document{}, fmt.Errorf("failed to decode document %s: %w", r.Key, err)
	}

	return Document{Key: r.Key, Fields: fields, CreatedAt: r.CreatedAt}, nil
}

// postgresStore keeps every collection in one JSONB table. Keys are UUIDs,
// so a key that does not parse cannot exist.
type postgresStore struct {
	conn *postgres.Connection
	otel otel.Otel
}

func NewPostgres(conn *postgres.Connection, ot otel.Otel) Store {
	return &postgresStore{conn: conn, otel: ot}
}

func (s *postgresStore) List(ctx context.Context, collection string) (res []Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendPostgres, "list", time.Now())

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	var rows []row
	if err = s.conn.Read.SelectContext(ctx, &rows, queryList, collection); err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("failed to list documents")

		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	res = make([]Document, 0, len(rows))

	for _, r := range rows {
		doc, err := r.document()
		if err != nil {
			return nil, err
		}

		res = append(res, doc)
	}

	return res, nil
}

func (s *postgresStore) Get(ctx context.Context, collection, key string) (res Document, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendPostgres, "get", time.Now())

	if key == constant.Empty {
		return res, false, ErrMissingKey
	}

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collection,
		constant.OtelKeyAttributeKey:        key,
	})

	if _, parseErr := uuid.Parse(key); parseErr != nil {
		return res, false, nil
	}

	var r row
	if err = s.conn.Read.GetContext(ctx, &r, queryGet, collection, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, false, nil
		}

		log.Error().Err(err).Str("collection", collection).Str("key", key).Msg("failed to get document")

		return res, false, fmt.Errorf("failed to get document: %w", err)
	}

	res, err = r.document()
	if err != nil {
		return res, false, err
	}

	return res, true, nil
}

func (s *postgresStore) Add(ctx context.Context, collection string, fields map[string]any) (key string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendPostgres, "add", time.Now())

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	raw, err := json.Marshal(fields)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to encode document: %w", err)
	}

	key = uuid.NewString()

	if _, err = s.conn.Write.ExecContext(ctx, queryInsert, collection, key, raw); err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("failed to add document")

		return constant.Empty, fmt.Errorf("failed to add document: %w", err)
	}

	return key, nil
}

func (s *postgresStore) Update(ctx context.Context, collection, key string, patch map[string]any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendPostgres, "update", time.Now())

	if key == constant.Empty {
		return ErrMissingKey
	}

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collection,
		constant.OtelKeyAttributeKey:        key,
	})

	if _, parseErr := uuid.Parse(key); parseErr != nil {
		return ErrNotFound
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}

	result, err := s.conn.Write.ExecContext(ctx, queryUpdate, collection, key, raw)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Str("key", key).Msg("failed to update document")

		return fmt.Errorf("failed to update document: %w", err)
	}

	return affected(result)
}

func (s *postgresStore) Delete(ctx context.Context, collection, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendPostgres, "delete", time.Now())

	if key == constant.Empty {
		return ErrMissingKey
	}

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collection,
		constant.OtelKeyAttributeKey:        key,
	})

	if _, parseErr := uuid.Parse(key); parseErr != nil {
		return ErrNotFound
	}

	result, err := s.conn.Write.ExecContext(ctx, queryDelete, collection, key)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Str("key", key).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	return affected(result)
}

func (s *postgresStore) Close() error {
	return s.conn.Close()
}

func affected(result sql.Result) error {
	count, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if count == 0 {
		return ErrNotFound
	}

	return nil
}
