// Package auth mints and verifies the admin session token and checks the
// admin credential. There is no session store: any request carrying a validly
// signed, unexpired admin token is authorized.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/khushprajapati/portfolio-backend/errs"
)

// RoleAdmin is the only role the API ever mints or accepts for mutations.
const RoleAdmin = "admin"

// Claims is the token payload: the single admin identity plus the standard
// time-bound claims.
type Claims struct {
	AdminID  string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 tokens with a shared secret. The
// secret is process-wide configuration injected at construction, never read
// from the environment per request.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "portfolio-backend",
	}
}

// Issue mints a signed token for the given identity and returns it along with
// its expiry time.
func (i TokenIssuer) Issue(adminID, username, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := &Claims{
		AdminID:  adminID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    i.issuer,
			Subject:   adminID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a token string. Failures come back as the
// taxonomy errors the middleware writes straight to the response: expired
// tokens are distinguished from malformed or tampered ones, both 401.
func (i TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewExpiredTokenError()
		}
		return nil, errs.NewInvalidTokenError()
	}
	if !token.Valid {
		return nil, errs.NewInvalidTokenError()
	}
	return claims, nil
}
