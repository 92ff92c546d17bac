package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushprajapati/portfolio-backend/models"
)

func TestSubmitContact(t *testing.T) {
	env := newTestEnv(t)

	rec, envelope := doRequest(t, env.router, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"subject": "Collaboration",
		"message": "I have a project idea.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Message sent successfully!", envelope.Message)

	var data struct {
		ID        uuid.UUID `json:"id"`
		CreatedAt time.Time `json:"createdAt"`
	}
	unmarshalData(t, envelope, &data)
	assert.NotEqual(t, uuid.Nil, data.ID)
	assert.WithinDuration(t, time.Now().UTC(), data.CreatedAt, 5*time.Second)

	// The stored message and the dispatched notification carry the same ID
	require.Len(t, env.dispatcher.dispatched, 1)
	assert.Equal(t, data.ID.String(), env.dispatcher.dispatched[0].MessageID)
	assert.Equal(t, "ada@example.com", env.dispatcher.dispatched[0].Email)
}

func TestSubmitContactValidation(t *testing.T) {
	env := newTestEnv(t)

	base := map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hi",
		"message": "Hello there",
	}

	for _, field := range []string{"name", "email", "subject", "message"} {
		t.Run("missing "+field, func(t *testing.T) {
			body := make(map[string]string, len(base))
			for k, v := range base {
				body[k] = v
			}
			delete(body, field)

			rec, envelope := doRequest(t, env.router, http.MethodPost, "/api/contact", "", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, envelope.Success)
		})
	}
	assert.Zero(t, env.messages.mutations)
	assert.Empty(t, env.dispatcher.dispatched)
}

func TestSubmitContactDispatchFailureStillSucceeds(t *testing.T) {
	env := newTestEnv(t)
	env.dispatcher.err = errors.New("smtp relay down")

	rec, _ := doRequest(t, env.router, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "Grace",
		"email":   "grace@example.com",
		"subject": "Bug report",
		"message": "Found an edge case.",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The message was written despite the failed notification
	token := env.adminToken(t)
	_, listed := doRequest(t, env.router, http.MethodGet, "/api/admin/messages", token, nil)
	var messages []models.Message
	unmarshalData(t, listed, &messages)
	require.Len(t, messages, 1)
	assert.Equal(t, "Bug report", messages[0].Subject)
}

func TestSubmitContactStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.messages.addErr = errors.New("connection refused")

	rec, envelope := doRequest(t, env.router, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hi",
		"message": "Hello",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, envelope.Success)
	// Nothing is dispatched when the write fails
	assert.Empty(t, env.dispatcher.dispatched)
}

func TestContactMessageLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	_, submitted := doRequest(t, env.router, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "Linus",
		"email":   "linus@example.com",
		"subject": "Kernel question",
		"message": "How do schedulers work?",
	})
	var data struct {
		ID uuid.UUID `json:"id"`
	}
	unmarshalData(t, submitted, &data)

	// Fresh messages list as unread
	_, listed := doRequest(t, env.router, http.MethodGet, "/api/admin/messages", token, nil)
	var messages []models.Message
	unmarshalData(t, listed, &messages)
	require.Len(t, messages, 1)
	assert.False(t, messages[0].Read)

	rec, envelope := doRequest(t, env.router, http.MethodPut, "/api/admin/messages/"+data.ID.String()+"/read", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Message marked as read", envelope.Message)

	_, listed = doRequest(t, env.router, http.MethodGet, "/api/admin/messages", token, nil)
	unmarshalData(t, listed, &messages)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)

	rec, _ = doRequest(t, env.router, http.MethodDelete, "/api/admin/messages/"+data.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, listed = doRequest(t, env.router, http.MethodGet, "/api/admin/messages", token, nil)
	unmarshalData(t, listed, &messages)
	assert.Empty(t, messages)
}

func TestMessageAdminRoutesRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.NewString()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/messages"},
		{http.MethodPut, "/api/admin/messages/" + id + "/read"},
		{http.MethodDelete, "/api/admin/messages/" + id},
	} {
		rec, _ := doRequest(t, env.router, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestMessageNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec, _ := doRequest(t, env.router, http.MethodPut, "/api/admin/messages/"+uuid.NewString()+"/read", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(t, env.router, http.MethodDelete, "/api/admin/messages/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
