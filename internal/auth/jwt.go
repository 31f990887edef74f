// Package auth verifies the bearer tokens the marketplace issues to sellers
// and admins. Login itself lives elsewhere; this service only checks
// signatures and reads the subject and role.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ads-billing/internal/config"
	"ads-billing/internal/observability"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

type Role string

const (
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Claims are the marketplace token claims. The subject is the seller or
// admin user id.
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

type Verifier struct {
	secret []byte
	issuer string
	logger *observability.Logger
}

func NewVerifier(cfg config.AuthConfig, logger *observability.Logger) *Verifier {
	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		logger: logger,
	}
}

// Issue signs a token for subject. Used by tests and local tooling.
func (v *Verifier) Issue(subject uuid.UUID, role Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Validate parses and verifies token.
func (v *Verifier) Validate(ctx context.Context, token string) (Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			v.logger.InfoWithError(ctx, "token expired", err)
			return Claims{}, ErrExpiredToken
		}
		v.logger.InfoWithError(ctx, "failed to parse token", err)
		return Claims{}, ErrInvalidToken
	}
	if !t.Valid {
		return Claims{}, ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return Claims{}, ErrInvalidClaims
	}
	if claims.Role != RoleSeller && claims.Role != RoleAdmin {
		return Claims{}, ErrInvalidClaims
	}
	return claims, nil
}
