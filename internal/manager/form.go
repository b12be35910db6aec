package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"hotel/shared/constant"
	"hotel/shared/enum"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

// FormSchema describes the add and edit forms of a screen.
type FormSchema struct {
	Create *jsonschema.Schema `json:"create"`
	Update *jsonschema.Schema `json:"update"`
}

var (
	choiceType  = reflect.TypeFor[enum.Choice]()
	decimalType = reflect.TypeFor[decimal.Decimal]()
)

func mapType(t reflect.Type) *jsonschema.Schema {
	switch {
	case t == decimalType:
		return &jsonschema.Schema{Type: "number"}
	case t.Implements(choiceType):
		choice, ok := reflect.Zero(t).Interface().(enum.Choice)
		if !ok {
			return nil
		}

		schema := &jsonschema.Schema{Type: "string"}
		for _, option := range choice.Options() {
			schema.OneOf = append(schema.OneOf, &jsonschema.Schema{Const: option.Code, Title: option.Label})
		}

		return schema
	default:
		return nil
	}
}

func reflectSchema(value any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    mapType,
	}

	return reflector.Reflect(value)
}

func (m *Manager[R, C, U]) Schema() FormSchema {
	var (
		create C
		update U
	)

	return FormSchema{
		Create: reflectSchema(create),
		Update: reflectSchema(update),
	}
}

func decode[T any](reader io.Reader) (T, error) {
	var value T

	if err := json.NewDecoder(reader).Decode(&value); err != nil {
		return value, failure.BadRequest(fmt.Errorf("failed to decode form: %w", err)) //nolint:wrapcheck
	}

	return value, nil
}

func (m *Manager[R, C, U]) undecodable(operation Operation, key string, err error) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.Debug().Err(err).Str("operation", string(operation)).Msg("form is undecodable")

	return m.invalid(operation, key, map[string]string{"body": err.Error()})
}

// reviseDraft lets the screen derive fields from what changed in the form.
func (m *Manager[R, C, U]) reviseDraft(next C) C {
	if m.cfg.ReviseDraft == nil || m.draft == nil {
		return next
	}

	return m.cfg.ReviseDraft(*m.draft, next)
}

func (m *Manager[R, C, U]) reviseEdit(next U) U {
	if m.cfg.ReviseEdit == nil || m.edit == nil {
		return next
	}

	return m.cfg.ReviseEdit(*m.edit, next)
}

// SubmitCreate decodes the add form from JSON and creates it.
func (m *Manager[R, C, U]) SubmitCreate(ctx context.Context, reader io.Reader) Status {
	draft, err := decode[C](reader)
	if err != nil {
		return m.undecodable(OperationCreate, constant.Empty, err)
	}

	m.mu.Lock()
	draft = m.reviseDraft(draft)
	m.mu.Unlock()

	return m.Create(ctx, draft)
}

// SubmitUpdate decodes the edit form from JSON and applies it to key.
func (m *Manager[R, C, U]) SubmitUpdate(ctx context.Context, key string, reader io.Reader) Status {
	patch, err := decode[U](reader)
	if err != nil {
		return m.undecodable(OperationUpdate, key, err)
	}

	m.mu.Lock()
	if m.editKey == key {
		patch = m.reviseEdit(patch)
	}
	m.mu.Unlock()

	return m.Update(ctx, key, patch)
}

// ReplaceDraft stores the add form as typed so far and returns its field
// violations. The form is opened when it was closed.
func (m *Manager[R, C, U]) ReplaceDraft(reader io.Reader) (map[string]string, error) {
	draft, err := decode[C](reader)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	draft = m.reviseDraft(draft)
	m.draft = &draft

	return validator.Violations(&draft), nil
}

// ReplaceEdit stores the open edit form as typed so far and returns its
// field violations.
func (m *Manager[R, C, U]) ReplaceEdit(reader io.Reader) (map[string]string, error) {
	patch, err := decode[U](reader)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.editKey == constant.Empty {
		return nil, errNoEdit
	}

	patch = m.reviseEdit(patch)
	m.edit = &patch

	return validator.Violations(&patch), nil
}

var errNoEdit = failure.Conflict("no record is being edited")
