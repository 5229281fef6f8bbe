package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// RoleAdmin is the only role this subsystem issues tokens for.
const RoleAdmin = "ADMIN"

// TokenService signs and verifies admin bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenService creates a JWT token service.
func NewTokenService(secret string, ttl time.Duration, issuer string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Claims is the verified content of an admin token.
type Claims struct {
	AdminID   kernel.AdminID
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// GenerateAdminToken issues a signed token for an admin.
func (s *TokenService) GenerateAdminToken(adminID kernel.AdminID) (string, error) {
	now := time.Now()
	claims := adminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign admin token", errx.TypeInternal)
	}
	return signed, nil
}

// ValidateAdminToken verifies a token and returns its claims. Expired,
// malformed or non-admin tokens are rejected.
func (s *TokenService) ValidateAdminToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken().WithCause(err)
	}

	claims, ok := parsed.Claims.(*adminClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken()
	}
	if claims.Role != RoleAdmin {
		return nil, ErrInvalidToken().WithDetail("role", claims.Role)
	}

	out := &Claims{
		AdminID: kernel.AdminID(claims.Subject),
		Role:    claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
