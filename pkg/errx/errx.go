package errx

import (
	"errors"
	"fmt"
)

// Type classifies an error for transport mapping and logging decisions.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeInternal       Type = "INTERNAL"
	TypeExternal       Type = "EXTERNAL"
)

// Code identifies a registered error kind within a registry.
type Code struct {
	registry   string
	code       string
	errType    Type
	httpStatus int
	message    string
}

// FullCode returns the namespaced code, e.g. "JOB_NOT_FOUND".
func (c Code) FullCode() string {
	return c.registry + "_" + c.code
}

// Registry groups the error codes of one module under a common prefix.
type Registry struct {
	prefix string
}

// NewRegistry creates an error registry for a module.
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register declares an error code with its type, HTTP status and default message.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		registry:   r.prefix,
		code:       code,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
}

// New creates an error instance for a registered code.
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.FullCode(),
		Type:       c.errType,
		HTTPStatus: httpStatusOrDefault(c.httpStatus),
		Message:    c.message,
	}
}

// Error is the application error carried across all layers.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair for diagnostics and client hints.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error without exposing it to clients.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// Wrap converts an arbitrary error into an *Error of the given type. An
// existing *Error passes through unchanged so the original code survives.
func Wrap(err error, message string, t Type) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Code:       string(t) + "_ERROR",
		Type:       t,
		HTTPStatus: defaultStatusFor(t),
		Message:    message,
		cause:      err,
	}
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, t Type) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// ToHTTPResponse renders the client-safe JSON body. The wrapped cause is
// never included.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Extensions satisfies gqlerrors.ExtendedError so GraphQL responses carry the
// code and type without leaking the cause.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": graphQLCodeFor(e.Type),
		"type": string(e.Type),
	}
	if len(e.Details) > 0 {
		ext["details"] = e.Details
	}
	return ext
}

func graphQLCodeFor(t Type) string {
	switch t {
	case TypeAuthentication:
		return "UNAUTHENTICATED"
	case TypeAuthorization:
		return "FORBIDDEN"
	case TypeValidation, TypeConflict, TypeBusiness:
		return "BAD_USER_INPUT"
	case TypeNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

func defaultStatusFor(t Type) int {
	switch t {
	case TypeValidation, TypeBusiness:
		return 400
	case TypeAuthentication:
		return 401
	case TypeAuthorization:
		return 403
	case TypeNotFound:
		return 404
	case TypeConflict:
		return 409
	case TypeExternal:
		return 502
	default:
		return 500
	}
}

func httpStatusOrDefault(status int) int {
	if status == 0 {
		return 500
	}
	return status
}
