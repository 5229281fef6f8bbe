package auth

import (
	"net/http"

	"github.com/mehrab1899/ats-backend/pkg/errx"
)

var registry = errx.NewRegistry("AUTH")

var (
	ErrCodeInvalidToken  = registry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "invalid or expired token")
	ErrCodeAdminRequired = registry.Register("ADMIN_REQUIRED", errx.TypeAuthentication, http.StatusUnauthorized, "authentication required")
)

func ErrInvalidToken() *errx.Error {
	return registry.New(ErrCodeInvalidToken)
}

func ErrAdminRequired() *errx.Error {
	return registry.New(ErrCodeAdminRequired)
}
