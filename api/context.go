package api

import (
	"context"

	"github.com/khushprajapati/portfolio-backend/auth"
)

type keyType string

const (
	adminClaimsKey keyType = "adminClaims"
)

// ctxWithClaims adds the verified admin claims to the context
func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, adminClaimsKey, claims)
}

// ClaimsFromContext retrieves the admin claims attached by the auth
// middleware, or nil when the request never passed through it.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(adminClaimsKey).(*auth.Claims)
	return claims
}
