package admin

import (
	"net/http"

	"github.com/mehrab1899/ats-backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ADMIN")

// Error codes
var (
	CodeAdminNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Admin not found")
	CodeAdminAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Admin with this email already exists")
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid credentials")
	CodeInvalidEmail       = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email address")
	CodeWeakPassword       = ErrRegistry.Register("WEAK_PASSWORD", errx.TypeValidation, http.StatusBadRequest, "Password must be at least 8 characters")
)

// Helper functions
func ErrAdminNotFound() *errx.Error {
	return ErrRegistry.New(CodeAdminNotFound)
}

func ErrAdminAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeAdminAlreadyExists)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrWeakPassword() *errx.Error {
	return ErrRegistry.New(CodeWeakPassword)
}
