package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khushprajapati/portfolio-backend/errs"
	"github.com/khushprajapati/portfolio-backend/models"
	"github.com/khushprajapati/portfolio-backend/services"
)

type contactHandler struct {
	responder  Responder
	logger     zerolog.Logger
	messages   MessageStore
	dispatcher services.Dispatcher
}

func newContactHandler(messages MessageStore, dispatcher services.Dispatcher) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		messages:   messages,
		dispatcher: dispatcher,
	}
}

type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitContact is the public contact-form endpoint. The message write is the
// success criterion; the notification email is dispatched best-effort after
// the write commits, and its failure never reaches the caller.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input contactInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		for field, value := range map[string]string{
			"name":    input.Name,
			"email":   input.Email,
			"subject": input.Subject,
			"message": input.Message,
		} {
			if value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}

		message := &models.Message{
			ID:        uuid.New(),
			Name:      input.Name,
			Email:     input.Email,
			Subject:   input.Subject,
			Body:      input.Message,
			Read:      false,
			CreatedAt: time.Now().UTC(),
		}

		if err := h.messages.Add(r.Context(), message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		notification := &services.ContactNotification{
			MessageID: message.ID.String(),
			Name:      message.Name,
			Email:     message.Email,
			Subject:   message.Subject,
			Body:      message.Body,
		}
		if err := h.dispatcher.Dispatch(notification); err != nil {
			// Message is stored; a lost notification is log-only.
			h.logger.Error().Err(err).Str("messageId", notification.MessageID).
				Msg("Failed to dispatch contact notification")
		}

		h.responder.WriteMessage(w, http.StatusCreated, "Message sent successfully!", map[string]any{
			"id":        message.ID,
			"createdAt": message.CreatedAt,
		})
	}
}
