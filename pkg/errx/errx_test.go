package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")

	err := reg.New(code)
	assert.Equal(t, "WIDGET_NOT_FOUND", err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "Widget not found", err.Message)
}

func TestWithDetail(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("INVALID", TypeValidation, http.StatusBadRequest, "Invalid widget")

	err := reg.New(code).WithDetail("field", "name").WithDetail("count", 3)
	assert.Equal(t, "name", err.Details["field"])
	assert.Equal(t, 3, err.Details["count"])

	resp := err.ToHTTPResponse()
	assert.Equal(t, "WIDGET_INVALID", resp["code"])
	assert.NotNil(t, resp["details"])
}

func TestWrapPassesThroughAppErrors(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")
	original := reg.New(code)

	wrapped := Wrap(original, "lookup failed", TypeInternal)
	assert.Same(t, original, wrapped)
}

func TestWrapForeignError(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to reach store", TypeInternal)

	require.NotNil(t, err)
	assert.Equal(t, TypeInternal, err.Type)
	assert.ErrorIs(t, err, cause)

	// the cause must never reach the client payload
	resp := err.ToHTTPResponse()
	assert.NotContains(t, resp["message"], "connection refused")
}

func TestExtensionsCodes(t *testing.T) {
	cases := []struct {
		errType Type
		want    string
	}{
		{TypeAuthentication, "UNAUTHENTICATED"},
		{TypeValidation, "BAD_USER_INPUT"},
		{TypeConflict, "BAD_USER_INPUT"},
		{TypeNotFound, "NOT_FOUND"},
		{TypeInternal, "INTERNAL_SERVER_ERROR"},
	}
	for _, tc := range cases {
		err := &Error{Code: "X", Type: tc.errType, Message: "m"}
		assert.Equal(t, tc.want, err.Extensions()["code"], string(tc.errType))
	}
}

func TestIsType(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")

	assert.True(t, IsType(reg.New(code), TypeNotFound))
	assert.False(t, IsType(reg.New(code), TypeConflict))
	assert.False(t, IsType(errors.New("plain"), TypeNotFound))
}
