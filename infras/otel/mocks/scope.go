package mocks

import (
	"sync"

	"hotel/infras/otel"
)

// Scope records what was traced so tests can assert on it. The zero value
// is ready to use.
type Scope struct {
	Name string

	mu         sync.Mutex
	ended      bool
	errors     []error
	events     []string
	attributes map[string]any
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, name)
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = true
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attributes == nil {
		s.attributes = map[string]any{}
	}

	s.attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = append(s.errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Scope) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.events...)
}

func (s *Scope) Attribute(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attributes[key]
}

func NewScope() otel.Scope {
	return &Scope{}
}
