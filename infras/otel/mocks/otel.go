package mocks

import (
	"context"
	"sync"

	"hotel/infras/otel"
)

type otelImpl struct {
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder keeps every scope it opens, named by span.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{Name: spanName}

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the last scope opened with spanName, or nil.
func (r *Recorder) Scope(spanName string) *Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := len(r.scopes) - 1; idx >= 0; idx-- {
		if r.scopes[idx].Name == spanName {
			return r.scopes[idx]
		}
	}

	return nil
}
