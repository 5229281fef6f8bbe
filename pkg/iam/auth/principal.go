package auth

import (
	"context"
	"strings"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// Principal identifies the authenticated admin behind a request.
type Principal struct {
	AdminID kernel.AdminID
}

type principalCtxKey struct{}

// WithPrincipal attaches a principal to the context. A nil principal leaves
// the context anonymous.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	if p == nil {
		return ctx
	}
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// PrincipalFrom returns the request principal, or nil for anonymous requests.
func PrincipalFrom(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalCtxKey{}).(*Principal)
	return p
}

// RequirePrincipal returns the request principal or an authentication error.
// Admin-only operations call this at their entry point.
func RequirePrincipal(ctx context.Context) (*Principal, error) {
	p := PrincipalFrom(ctx)
	if p == nil {
		return nil, ErrAdminRequired()
	}
	return p, nil
}

// ResolvePrincipal turns an Authorization header into a principal. Missing,
// malformed or expired tokens resolve to nil so public operations keep
// working on requests that happen to carry a stale token.
func ResolvePrincipal(ts *TokenService, authorization string) *Principal {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	if token == "" {
		return nil
	}

	claims, err := ts.ValidateAdminToken(token)
	if err != nil {
		return nil
	}
	if claims.AdminID.IsEmpty() {
		return nil
	}
	return &Principal{AdminID: claims.AdminID}
}
