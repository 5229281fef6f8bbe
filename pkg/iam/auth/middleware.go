package auth

import (
	"github.com/gofiber/fiber/v2"
)

const localsPrincipalKey = "iam_principal"

// Middleware resolves an optional admin principal from the Authorization
// header and stashes it on the request. It never rejects a request; handlers
// that need an admin call RequirePrincipal themselves.
func Middleware(ts *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if p := ResolvePrincipal(ts, c.Get(fiber.HeaderAuthorization)); p != nil {
			c.Locals(localsPrincipalKey, p)
		}
		return c.Next()
	}
}

// PrincipalFromFiber returns the principal the middleware resolved for the
// request, or nil.
func PrincipalFromFiber(c *fiber.Ctx) *Principal {
	p, _ := c.Locals(localsPrincipalKey).(*Principal)
	return p
}
