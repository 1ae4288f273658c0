package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the closed set of application error variants.
type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindFileUpload
	KindExternalService
	KindDatabase
)

// kindInfo carries the HTTP status and machine-readable code for a Kind.
type kindInfo struct {
	status int
	code   string
}

// kindTable is the single mapping between error kinds and their transport
// representation. Handlers never branch on status codes themselves.
var kindTable = map[Kind]kindInfo{
	KindNotFound:        {http.StatusNotFound, "NOT_FOUND"},
	KindValidation:      {http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
	KindAuthentication:  {http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
	KindAuthorization:   {http.StatusForbidden, "AUTHORIZATION_ERROR"},
	KindFileUpload:      {http.StatusBadRequest, "FILE_UPLOAD_ERROR"},
	KindExternalService: {http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR"},
	KindDatabase:        {http.StatusInternalServerError, "DATABASE_ERROR"},
}

// AppError is the application error carrier. Detail is safe to show to
// clients; Err (if set) holds the underlying cause for server-side logs.
type AppError struct {
	Kind    Kind
	Detail  string
	Details map[string]interface{}
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error's kind.
func (e *AppError) Status() int {
	if info, ok := kindTable[e.Kind]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Code returns the machine-readable error code for the error's kind.
func (e *AppError) Code() string {
	if info, ok := kindTable[e.Kind]; ok {
		return info.code
	}
	return "INTERNAL_SERVER_ERROR"
}

// WithDetails attaches context details to the error.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// NewNotFound reports a missing resource, e.g. NewNotFound("Wing", "slug", slug).
func NewNotFound(resource, field, value string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Detail:  fmt.Sprintf("%s not found (%s='%s')", resource, field, value),
		Details: map[string]interface{}{"resource": resource, field: value},
	}
}

// NewValidation reports malformed or out-of-constraint input.
func NewValidation(detail string) *AppError {
	return &AppError{Kind: KindValidation, Detail: detail}
}

// NewValidationField reports a validation failure tied to a named field.
func NewValidationField(detail, field string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Detail:  detail,
		Details: map[string]interface{}{"field": field},
	}
}

// NewAuthentication reports bad credentials or a missing/invalid token.
func NewAuthentication(detail string) *AppError {
	return &AppError{Kind: KindAuthentication, Detail: detail}
}

// NewAuthorization reports insufficient privilege.
func NewAuthorization(detail string) *AppError {
	return &AppError{Kind: KindAuthorization, Detail: detail}
}

// NewFileUpload reports a disallowed file type or shape.
func NewFileUpload(detail, filename string) *AppError {
	return &AppError{
		Kind:    KindFileUpload,
		Detail:  detail,
		Details: map[string]interface{}{"filename": filename},
	}
}

// NewExternalService reports a failed call to an external collaborator.
func NewExternalService(service, detail string, err error) *AppError {
	return &AppError{
		Kind:    KindExternalService,
		Detail:  fmt.Sprintf("%s error: %s", service, detail),
		Details: map[string]interface{}{"service": service},
		Err:     err,
	}
}

// NewDatabase reports an unexpected store failure.
func NewDatabase(detail string, err error) *AppError {
	return &AppError{Kind: KindDatabase, Detail: detail, Err: err}
}
