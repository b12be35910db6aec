// Package manager holds the dashboard state of each record collection: the
// fetched records, paging, selection, the add and edit forms, and the
// outcome of the last operation. Every screen is one Manager configured
// with its columns and form types; the Shell picks which one is shown.
package manager

//go:generate go run go.uber.org/mock/mockgen -source=./manager.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"

	"hotel/shared/constant"
	"hotel/shared/enum"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/shared/metrics"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/rs/zerolog"
)

const (
	PageSize    = 8
	Placeholder = "ไม่ระบุ"
)

type Operation string

const (
	OperationList   Operation = "list"
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Kind classifies the outcome of an operation.
type Kind string

const (
	KindOK         Kind = "ok"
	KindStore      Kind = "store"
	KindGuard      Kind = "guard"
	KindValidation Kind = "validation"
	KindBusy       Kind = "busy"
)

type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// Backend is the collection a manager works on. The domain services
// implement it.
type Backend[R, C, U any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, req C) (string, error)
	Update(ctx context.Context, req U, id string) error
	Delete(ctx context.Context, id string) error
}

// Column renders one table cell. An empty value shows the placeholder.
type Column[R any] struct {
	Key   string
	Title string
	Value func(R) string
}

type Config[R, C, U any] struct {
	Menu       Menu
	Title      string
	Collection string
	Columns    []Column[R]
	Key        func(R) string
	// NewDraft returns the empty add form.
	NewDraft func() C
	// EditDraft prefills the edit form from a record.
	EditDraft func(R) U
	// ReviseDraft and ReviseEdit derive fields of a form from what changed
	// between its previous and next content. Optional.
	ReviseDraft func(prev, next C) C
	ReviseEdit  func(prev, next U) U
	// Options lists the choices of enumerated form fields by json name.
	Options map[string][]enum.Option
}

type Manager[R, C, U any] struct {
	cfg     Config[R, C, U]
	backend Backend[R, C, U]
	log     zerolog.Logger

	mu       sync.Mutex
	records  []R
	page     int
	selected string
	draft    *C
	edit     *U
	editKey  string
	pending  int
	issued   uint64
	applied  uint64
	inFlight map[Operation]bool
	status   Status
}

func New[R, C, U any](cfg Config[R, C, U], backend Backend[R, C, U]) *Manager[R, C, U] {
	return &Manager[R, C, U]{
		cfg:      cfg,
		backend:  backend,
		log:      logger.Component("manager").With().Str("collection", cfg.Collection).Logger(),
		page:     1,
		inFlight: map[Operation]bool{},
		status:   Status{Kind: KindOK, Code: http.StatusOK},
	}
}

func (m *Manager[R, C, U]) Menu() Menu {
	return m.cfg.Menu
}

func (m *Manager[R, C, U]) Collection() string {
	return m.cfg.Collection
}

// Mount resets the screen to its first page with closed forms, then fetches
// the collection.
func (m *Manager[R, C, U]) Mount(ctx context.Context) Status {
	m.mu.Lock()
	m.page = 1
	m.selected = constant.Empty
	m.draft = nil
	m.edit = nil
	m.editKey = constant.Empty
	m.mu.Unlock()

	return m.List(ctx)
}

// List replaces the records with the whole collection. A failed fetch keeps
// the previous records. When fetches overlap only the latest one issued is
// applied.
func (m *Manager[R, C, U]) List(ctx context.Context) Status {
	m.mu.Lock()
	m.pending++
	m.issued++
	generation := m.issued
	m.mu.Unlock()

	records, err := m.backend.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending--

	if err != nil {
		return m.fail(OperationList, constant.Empty, err)
	}

	if generation > m.applied {
		m.applied = generation
		m.records = records
		m.page = min(m.page, m.totalPages())

		if m.selected != constant.Empty && !m.contains(m.selected) {
			m.selected = constant.Empty
		}
	}

	return m.succeed(OperationList, constant.Empty)
}

// Create persists draft, refreshes and closes the add form. On any failure
// the form stays open with draft in it.
func (m *Manager[R, C, U]) Create(ctx context.Context, draft C) Status {
	m.mu.Lock()
	m.draft = &draft

	if fields := validator.Violations(&draft); len(fields) > 0 {
		defer m.mu.Unlock()

		return m.invalid(OperationCreate, constant.Empty, fields)
	}

	if !m.begin(OperationCreate) {
		defer m.mu.Unlock()

		return m.busy(OperationCreate, constant.Empty)
	}
	m.mu.Unlock()

	key, err := m.backend.Create(ctx, draft)

	m.mu.Lock()
	m.end(OperationCreate)

	if err != nil {
		defer m.mu.Unlock()

		return m.fail(OperationCreate, constant.Empty, err)
	}
	m.mu.Unlock()

	return m.settle(ctx, OperationCreate, key, func() {
		m.draft = nil
	})
}

// Update applies patch to the record at key, refreshes and closes the edit
// form. On any failure the form stays open with patch in it.
func (m *Manager[R, C, U]) Update(ctx context.Context, key string, patch U) Status {
	m.mu.Lock()

	if key == constant.Empty {
		defer m.mu.Unlock()

		return m.guard(OperationUpdate)
	}

	m.edit = &patch
	m.editKey = key

	if fields := validator.Violations(&patch); len(fields) > 0 {
		defer m.mu.Unlock()

		return m.invalid(OperationUpdate, key, fields)
	}

	if !m.begin(OperationUpdate) {
		defer m.mu.Unlock()

		return m.busy(OperationUpdate, key)
	}
	m.mu.Unlock()

	err := m.backend.Update(ctx, patch, key)

	m.mu.Lock()
	m.end(OperationUpdate)

	if err != nil {
		defer m.mu.Unlock()

		return m.fail(OperationUpdate, key, err)
	}
	m.mu.Unlock()

	return m.settle(ctx, OperationUpdate, key, func() {
		m.edit = nil
		m.editKey = constant.Empty
	})
}

// Delete removes the record at key. The local records are only replaced by
// the refetch that follows.
func (m *Manager[R, C, U]) Delete(ctx context.Context, key string) Status {
	m.mu.Lock()

	if key == constant.Empty {
		defer m.mu.Unlock()

		return m.guard(OperationDelete)
	}

	if !m.begin(OperationDelete) {
		defer m.mu.Unlock()

		return m.busy(OperationDelete, key)
	}
	m.mu.Unlock()

	err := m.backend.Delete(ctx, key)

	m.mu.Lock()
	m.end(OperationDelete)

	if err != nil {
		defer m.mu.Unlock()

		return m.fail(OperationDelete, key, err)
	}
	m.mu.Unlock()

	return m.settle(ctx, OperationDelete, key, func() {
		if m.selected == key {
			m.selected = constant.Empty
		}

		if m.editKey == key {
			m.edit = nil
			m.editKey = constant.Empty
		}
	})
}

// settle runs after a successful mutation: refetch, then close the form.
// A failed refetch is kept as the current status.
func (m *Manager[R, C, U]) settle(ctx context.Context, operation Operation, key string, closeForm func()) Status {
	refresh := m.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	closeForm()

	status := m.succeed(operation, key)
	if !refresh.OK() {
		m.status = refresh
	}

	return status
}

// Paginate moves one page. It reports false at either boundary.
func (m *Manager[R, C, U]) Paginate(direction Direction) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch direction {
	case DirectionPrev:
		if m.page <= 1 {
			return false
		}

		m.page--
	case DirectionNext:
		if m.page >= m.totalPages() {
			return false
		}

		m.page++
	default:
		return false
	}

	return true
}

// GoTo jumps to page when it exists.
func (m *Manager[R, C, U]) GoTo(page int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if page < 1 || page > m.totalPages() {
		return false
	}

	m.page = page

	return true
}

func (m *Manager[R, C, U]) Select(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.contains(key) {
		return false
	}

	m.selected = key

	return true
}

func (m *Manager[R, C, U]) Deselect() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selected = constant.Empty
}

func (m *Manager[R, C, U]) OpenDraft() {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft := m.cfg.NewDraft()
	m.draft = &draft
}

func (m *Manager[R, C, U]) SetDraft(draft C) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft = m.reviseDraft(draft)
	m.draft = &draft
}

func (m *Manager[R, C, U]) CloseDraft() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.draft = nil
}

// OpenEdit opens the edit form prefilled from the record at key.
func (m *Manager[R, C, U]) OpenEdit(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(key)
	if idx < 0 {
		return false
	}

	edit := m.cfg.EditDraft(m.records[idx])
	m.edit = &edit
	m.editKey = key

	return true
}

func (m *Manager[R, C, U]) SetEdit(patch U) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.editKey == constant.Empty {
		return false
	}

	patch = m.reviseEdit(patch)
	m.edit = &patch

	return true
}

func (m *Manager[R, C, U]) CloseEdit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.edit = nil
	m.editKey = constant.Empty
}

func (m *Manager[R, C, U]) Records() []R {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.records)
}

func (m *Manager[R, C, U]) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.status
}

func (m *Manager[R, C, U]) Options() map[string][]enum.Option {
	return m.cfg.Options
}

func (m *Manager[R, C, U]) totalPages() int {
	return max(1, (len(m.records)+PageSize-1)/PageSize)
}

func (m *Manager[R, C, U]) indexOf(key string) int {
	if key == constant.Empty {
		return -1
	}

	return slices.IndexFunc(m.records, func(record R) bool {
		return m.cfg.Key(record) == key
	})
}

func (m *Manager[R, C, U]) contains(key string) bool {
	return m.indexOf(key) >= 0
}

func (m *Manager[R, C, U]) begin(operation Operation) bool {
	if m.inFlight[operation] {
		return false
	}

	m.inFlight[operation] = true

	return true
}

func (m *Manager[R, C, U]) end(operation Operation) {
	delete(m.inFlight, operation)
}

func (m *Manager[R, C, U]) record(status Status, outcome string) Status {
	status.At = timezone.Now()
	m.status = status

	metrics.IncOperation(m.cfg.Collection, string(status.Operation), outcome)

	return status
}

func (m *Manager[R, C, U]) succeed(operation Operation, key string) Status {
	return m.record(Status{Operation: operation, Kind: KindOK, Code: http.StatusOK, Key: key}, metrics.OutcomeSuccess)
}

func (m *Manager[R, C, U]) fail(operation Operation, key string, err error) Status {
	kind := KindStore

	switch {
	case errors.Is(err, failure.MissingIDError):
		kind = KindGuard
	case failure.GetCode(err) == http.StatusBadRequest:
		kind = KindValidation
	}

	m.log.Error().Err(err).Str("operation", string(operation)).Str("key", key).Msg("operation failed")

	return m.record(Status{
		Operation: operation,
		Kind:      kind,
		Code:      failure.GetCode(err),
		Message:   err.Error(),
		Key:       key,
	}, metrics.OutcomeFailure)
}

func (m *Manager[R, C, U]) guard(operation Operation) Status {
	m.log.Warn().Str("operation", string(operation)).Msg("record key is missing")

	return m.record(Status{
		Operation: operation,
		Kind:      KindGuard,
		Code:      failure.MissingIDError.Code,
		Message:   failure.MissingIDError.Message,
	}, metrics.OutcomeSkipped)
}

func (m *Manager[R, C, U]) busy(operation Operation, key string) Status {
	m.log.Warn().Str("operation", string(operation)).Msg("operation already in flight")

	return m.record(Status{
		Operation: operation,
		Kind:      KindBusy,
		Code:      failure.OperationInProgressError.Code,
		Message:   failure.OperationInProgressError.Message,
		Key:       key,
	}, metrics.OutcomeSkipped)
}

func (m *Manager[R, C, U]) invalid(operation Operation, key string, fields map[string]string) Status {
	m.log.Debug().Str("operation", string(operation)).Any("fields", fields).Msg("form is invalid")

	return m.record(Status{
		Operation: operation,
		Kind:      KindValidation,
		Code:      http.StatusBadRequest,
		Message:   "form has invalid fields",
		Fields:    fields,
		Key:       key,
	}, metrics.OutcomeSkipped)
}
