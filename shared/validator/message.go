package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"enum":     "{field} must be one of the listed options",
		"day":      "{field} must be a date formatted as YYYY-MM-DD",
	}
)

func render(valErr val.FieldError) string {
	errStr := templates[valErr.Tag()]
	if errStr == "" {
		return ""
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())

	return strings.ReplaceAll(errStr, "{param}", valErr.Param())
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if errStr := render(valErr); errStr != "" {
				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

func messages(err error) map[string]string {
	res := map[string]string{}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return res
	}

	for _, valErr := range valErrors {
		msg := render(valErr)
		if msg == "" {
			msg = valErr.Error()
		}

		if _, exists := res[valErr.Field()]; !exists {
			res[valErr.Field()] = msg
		}
	}

	return res
}
