package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	MissingField      Kind = "missing_field"
	InvalidIdentifier Kind = "invalid_identifier"
	NotFound          Kind = "not_found"
	CorruptState      Kind = "corrupt_state"
	MalformedBody     Kind = "malformed_body"
	MissingParam      Kind = "missing_param"
	InvalidParamType  Kind = "invalid_param_type"
	Internal          Kind = "internal"
)

// ErrorResponse is what services hand back to the presentation layers.
// Code is the HTTP status the error maps to.
type ErrorResponse interface {
	error
	Code() int
	Kind() Kind
}

type SimpleError struct {
	Status  int    `json:"-"`
	Type    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *SimpleError) Error() string {
	return e.Message
}

func (e *SimpleError) Code() int {
	return e.Status
}

func (e *SimpleError) Kind() Kind {
	return e.Type
}

var (
	MissingFieldError      = &SimpleError{Status: http.StatusBadRequest, Type: MissingField, Message: "Please fill all fields"}
	InvalidIdentifierError = &SimpleError{Status: http.StatusBadRequest, Type: InvalidIdentifier, Message: "Invalid identifier number, it must have exactly 11 digits"}
	NotFoundError          = &SimpleError{Status: http.StatusNotFound, Type: NotFound, Message: "Appointment not found"}
	CorruptStateError      = &SimpleError{Status: http.StatusInternalServerError, Type: CorruptState, Message: "Stored appointments are malformed"}
	MalformedBodyError     = &SimpleError{Status: http.StatusBadRequest, Type: MalformedBody, Message: "Malformed request body"}
	InternalServerError    = &SimpleError{Status: http.StatusInternalServerError, Type: Internal, Message: "Internal server error"}
)

func NewSimple(status int, message string) *SimpleError {
	return &SimpleError{Status: status, Type: Internal, Message: message}
}

func NewMissingParamError(param string) *SimpleError {
	return &SimpleError{
		Status:  http.StatusBadRequest,
		Type:    MissingParam,
		Message: fmt.Sprintf("Missing parameter '%s'", param),
	}
}

func NewInvalidParamTypeError(param, expected string) *SimpleError {
	return &SimpleError{
		Status:  http.StatusBadRequest,
		Type:    InvalidParamType,
		Message: fmt.Sprintf("Parameter '%s' must be of type %s", param, expected),
	}
}

// FromValidationError maps validator failures onto the taxonomy. A missing
// field always wins over a malformed identifier.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	var identifier bool
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return MissingFieldError
		case "identifier":
			identifier = true
		}
	}

	if identifier {
		return InvalidIdentifierError
	}
	return MalformedBodyError
}
