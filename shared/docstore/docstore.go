// Package docstore is the client of the hosted document database. Records
// live in named collections as schema-less field maps under an opaque key
// assigned by the store, together with a server-side creation timestamp.
// Nothing is filtered, sorted or paged by the store.
package docstore

//go:generate go run go.uber.org/mock/mockgen -source=./docstore.go -destination=./mocks/docstore_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrMissingKey = errors.New("document key is not defined")
)

type Document struct {
	Key       string
	Fields    map[string]any
	CreatedAt time.Time
}

type Store interface {
	// List returns every document of the collection in the store's own order.
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, key string) (doc Document, found bool, err error)
	// Add stores fields under a generated key stamped with the server time.
	Add(ctx context.Context, collection string, fields map[string]any) (key string, err error)
	// Update merges patch into the document at key.
	Update(ctx context.Context, collection, key string, patch map[string]any) error
	Delete(ctx context.Context, collection, key string) error
	Close() error
}
