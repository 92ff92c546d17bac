package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khushprajapati/portfolio-backend/auth"
	"github.com/khushprajapati/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	verifier  auth.CredentialVerifier
}

func newAuthHandler(verifier auth.CredentialVerifier) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		verifier:  verifier,
	}
}

type loginInput struct {
	Password string `json:"password"`
}

// login exchanges the admin password for a signed session token. No account
// lookup happens; there is exactly one identity and one configured secret.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input loginInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if input.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		token, expiresAt, err := h.verifier.Login(input.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"token":     token,
			"expiresAt": expiresAt.UTC().Format(time.RFC3339),
		})
	}
}
