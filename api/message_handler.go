package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khushprajapati/portfolio-backend/errs"
	"github.com/khushprajapati/portfolio-backend/models"
)

type messageHandler struct {
	responder Responder
	logger    zerolog.Logger
	messages  MessageStore
}

func newMessageHandler(messages MessageStore) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		messages:  messages,
	}
}

func (h messageHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "messageID")
	if idStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing messageID"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
		return uuid.Nil, false
	}
	return id, true
}

// listMessages returns every contact message, newest first. Admin route.
func (h messageHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messages.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}

		if messages == nil {
			messages = []*models.Message{}
		}
		h.responder.WriteData(w, http.StatusOK, messages)
	}
}

// markMessageRead flips the read flag on a message. Admin route.
func (h messageHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		found, err := h.messages.MarkRead(r.Context(), messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "message", err))
			return
		}
		if !found {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Message marked as read", nil)
	}
}

// deleteMessage removes a message by ID. Admin route.
func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		found, err := h.messages.Delete(r.Context(), messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "message", err))
			return
		}
		if !found {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Message deleted successfully", nil)
	}
}
