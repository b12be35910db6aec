package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"hotel/shared/failure"
	"hotel/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// Enumerated is implemented by the code types of every fixed option set.
type Enumerated interface {
	IsValid() bool
}

func registerEnumValidation(fl val.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}

	if enum, ok := field.Interface().(Enumerated); ok {
		return enum.IsValid()
	}

	return false
}

func registerDayValidation(fl val.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseDay(str)

	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("enum", registerEnumValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("day", registerDayValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Invalid(message(err), messages(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// Violations lists every failing field of data keyed by its json name, so a
// form can mark each one. A valid struct yields an empty map.
func Violations[T any](data *T) map[string]string {
	res := map[string]string{}

	if err := validate.Struct(data); err != nil {
		for field, msg := range messages(err) {
			res[field] = msg
		}
	}

	return res
}
