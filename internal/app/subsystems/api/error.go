package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error *Error `json:"error"`
}

type Error struct {
	// Code is the http status code of the response
	Code int `json:"code,omitempty"`

	// Message is the error message
	Message string `json:"message,omitempty"`

	// Details is a list of details about the error
	Details []*ErrorDetails `json:"details,omitempty"`
}

type ErrorDetails struct {
	// Type is the specific error type
	Type string `json:"@type,omitempty"`

	// Message is a human readable description of the error
	Message string `json:"message,omitempty"`

	// Domain is the domain of the error
	Domain string `json:"domain,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Response() *ErrorResponse {
	return &ErrorResponse{Error: e}
}

func RequestError(code int, err error) *Error {
	return &Error{
		Code:    code,
		Message: http.StatusText(code),
		Details: []*ErrorDetails{{
			Type:    "RequestError",
			Message: err.Error(),
			Domain:  "request",
		}},
	}
}

func RequestValidationError(err error) *Error {
	details := []*ErrorDetails{}

	for _, err := range parseBindingError(err) {
		details = append(details, &ErrorDetails{
			Type:    "FieldValidationError",
			Message: err,
			Domain:  "request",
		})
	}

	return &Error{
		Code:    http.StatusBadRequest,
		Message: "The request is invalid",
		Details: details,
	}
}

func ServerError(err error) *Error {
	return &Error{
		Code:    http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
		Details: []*ErrorDetails{{
			Type:    "ServerError",
			Message: err.Error(),
			Domain:  "server",
		}},
	}
}

// Helper functions

func parseBindingError(errs ...error) []string {
	var out []string
	for _, err := range errs {
		var validationErrs validator.ValidationErrors
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		switch {
		case errors.As(err, &validationErrs):
			for _, e := range validationErrs {
				out = append(out, parseFieldError(e))
			}
		case errors.As(err, &syntaxErr):
			out = append(out, fmt.Sprintf("The request body is not valid json, error at offset %d.", syntaxErr.Offset))
		case errors.As(err, &typeErr):
			out = append(out, fmt.Sprintf("The field %s must be of type %s.", strings.ToLower(typeErr.Field), typeErr.Type))
		default:
			out = append(out, err.Error())
		}
	}
	return out
}

func parseFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The field %s is required.", field)
	case "gte":
		param := e.Param()
		return fmt.Sprintf("The field %s must be greater than or equal to %s.", field, param)
	case "lte":
		param := e.Param()
		return fmt.Sprintf("The field %s must be less than or equal to %s.", field, param)
	case "oneof":
		param := e.Param()
		paramArr := strings.Split(param, " ")
		paramArr[len(paramArr)-1] = "or " + paramArr[len(paramArr)-1]
		param = strings.Join(paramArr, ", ")
		return fmt.Sprintf("The field %s must be one of %s.", field, param)
	default:
		return e.Error()
	}
}
