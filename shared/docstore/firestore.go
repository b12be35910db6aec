package docstore

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/metrics"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const backendFirestore = "firestore"

// firestoreStore maps collections one to one onto Firestore collections.
// The creation stamp is written as the createdAt server timestamp.
type firestoreStore struct {
	client *firestore.Client
	otel   otel.Otel
}

func NewFirestore(client *firestore.Client, ot otel.Otel) Store {
	return &firestoreStore{client: client, otel: ot}
}

func fromSnapshot(snap *firestore.DocumentSnapshot) Document {
	fields := snap.Data()

	createdAt := snap.CreateTime
	if stamp, ok := fields[constant.FieldCreatedAt].(time.Time); ok {
		createdAt = stamp
	}

	delete(fields, constant.FieldCreatedAt)

	return Document{Key: snap.Ref.ID, Fields: fields, CreatedAt: createdAt}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func (s *firestoreStore) List(ctx context.Context, collection string) (res []Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendFirestore, "list", time.Now())

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("failed to list documents")

		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	res = make([]Document, 0, len(snaps))
	for _, snap := range snaps {
		res = append(res, fromSnapshot(snap))
	}

	return res, nil
}

func (s *firestoreStore) Get(ctx context.Context, collection, key string) (res Document, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendFirestore, "get", time.Now())

	if key == constant.Empty {
		return res, false, ErrMissingKey
	}

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collection,
		constant.OtelKeyAttributeKey:        key,
	})

	snap, err := s.client.Collection(collection).Doc(key).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return res, false, nil
		}

		log.Error().Err(err).Str("collection", collection).Str("key", key).Msg("failed to get document")

		return res, false, fmt.Errorf("failed to get document: %w", err)
	}

	return fromSnapshot(snap), true, nil
}

func (s *firestoreStore) Add(ctx context.Context, collection string, fields map[string]any) (key string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendFirestore, "add", time.Now())

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	data := make(map[string]any, len(fields)+1)
	for name, value := range fields {
		data[name] = value
	}

	data[constant.FieldCreatedAt] = firestore.ServerTimestamp

	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("failed to add document")

		return constant.Empty, fmt.Errorf("failed to add document: %w", err)
	}

	return ref.ID, nil
}

func (s *firestoreStore) Update(ctx context.Context, collection, key string, patch map[string]any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendFirestore, "update", time.Now())

	if key == constant.Empty {
		return ErrMissingKey
	}

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collection,
		constant.OtelKeyAttributeKey:        key,
	})

	if len(patch) == 0 {
		return nil
	}

	updates := make([]firestore.Update, 0, len(patch))
	for name, value := range patch {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{name}, Value: value})
	}

	if _, err = s.client.Collection(collection).Doc(key).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}

		log.Error().Err(err).Str("collection", collection).Str("key", key).Msg("failed to update document")

		return fmt.Errorf("failed to update document: %w", err)
	}

	return nil
}

func (s *firestoreStore) Delete(ctx context.Context, collection, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocStoreScopeName, constant.OtelDocStoreScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer metrics.ObserveDocStore(backendFirestore, "delete", time.Now())

	if key == constant.Empty {
		return ErrMissingKey
	}

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collection,
		constant.OtelKeyAttributeKey:        key,
	})

	if _, err = s.client.Collection(collection).Doc(key).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}

		log.Error().Err(err).Str("collection", collection).Str("key", key).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

func (s *firestoreStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("failed to close firestore client: %w", err)
	}

	return nil
}
