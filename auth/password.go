package auth

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/khushprajapati/portfolio-backend/errs"
)

// adminSubject is the claim subject for the single admin identity. Nothing is
// persisted for it, so the value only needs to be stable.
const adminSubject = "admin"

// CredentialVerifier checks the admin password against the configured secret
// and issues a session token on a match. When a bcrypt hash is configured it
// wins over the plaintext secret; the plaintext path compares in constant
// time. There is exactly one admin identity, so no unknown-user case exists.
type CredentialVerifier struct {
	username     string
	password     string
	passwordHash string
	issuer       TokenIssuer
}

func NewCredentialVerifier(username, password, passwordHash string, issuer TokenIssuer) CredentialVerifier {
	return CredentialVerifier{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		issuer:       issuer,
	}
}

// Login validates the supplied password. On a match it mints an admin token
// and returns it with its expiry; on a mismatch it fails with the invalid
// credentials error, which the route layer maps to 401.
func (v CredentialVerifier) Login(password string) (string, time.Time, error) {
	if !v.matches(password) {
		return "", time.Time{}, errs.NewInvalidCredentialsError()
	}
	return v.issuer.Issue(adminSubject, v.username, RoleAdmin)
}

func (v CredentialVerifier) matches(password string) bool {
	if password == "" {
		return false
	}

	if v.passwordHash != "" {
		if !strings.HasPrefix(v.passwordHash, "$2") {
			// A configured hash that isn't bcrypt is a misconfiguration;
			// refuse logins instead of downgrading to the plaintext check.
			log.Error().Msg("ADMIN_PASSWORD_HASH is not a bcrypt hash; rejecting logins")
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	}

	if v.password == "" {
		// No credential configured: refuse every login rather than
		// accepting an empty secret.
		return false
	}
	return subtle.ConstantTimeCompare([]byte(v.password), []byte(password)) == 1
}
