package docstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"hotel/shared/constant"

	"github.com/google/uuid"
)

// memoryStore keeps collections in insertion order inside the process. It
// backs local runs without a database and the package tests.
type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
	now         func() time.Time
}

func NewMemory() Store {
	return &memoryStore{
		collections: map[string][]Document{},
		now:         time.Now,
	}
}

func clone(doc Document) Document {
	return Document{Key: doc.Key, Fields: maps.Clone(doc.Fields), CreatedAt: doc.CreatedAt}
}

func (s *memoryStore) index(collection, key string) int {
	for idx, doc := range s.collections[collection] {
		if doc.Key == key {
			return idx
		}
	}

	return -1
}

func (s *memoryStore) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]Document, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		res = append(res, clone(doc))
	}

	return res, nil
}

func (s *memoryStore) Get(_ context.Context, collection, key string) (Document, bool, error) {
	if key == constant.Empty {
		return Document{}, false, ErrMissingKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.index(collection, key)
	if idx < 0 {
		return Document{}, false, nil
	}

	return clone(s.collections[collection][idx]), true, nil
}

func (s *memoryStore) Add(_ context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := Document{Key: uuid.NewString(), Fields: maps.Clone(fields), CreatedAt: s.now()}
	if doc.Fields == nil {
		doc.Fields = map[string]any{}
	}

	s.collections[collection] = append(s.collections[collection], doc)

	return doc.Key, nil
}

func (s *memoryStore) Update(_ context.Context, collection, key string, patch map[string]any) error {
	if key == constant.Empty {
		return ErrMissingKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(collection, key)
	if idx < 0 {
		return ErrNotFound
	}

	maps.Copy(s.collections[collection][idx].Fields, patch)

	return nil
}

func (s *memoryStore) Delete(_ context.Context, collection, key string) error {
	if key == constant.Empty {
		return ErrMissingKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(collection, key)
	if idx < 0 {
		return ErrNotFound
	}

	docs := s.collections[collection]
	s.collections[collection] = append(docs[:idx:idx], docs[idx+1:]...)

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
