package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleContactEmail(t *testing.T) {
	var got ResendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ResendEmailResponse{ID: "email-789"})
	}))
	defer server.Close()

	worker := &Worker{
		notifier: NewContactNotifier(newTestMailer(server.URL), "admin@example.com"),
	}

	payload, err := json.Marshal(ContactNotification{
		MessageID: "m1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Body:      "Hi there",
	})
	require.NoError(t, err)

	task := asynq.NewTask(TaskTypeContactEmail, payload)
	err = worker.handleContactEmail(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, "New Contact Form: Hello", got.Subject)
	assert.Contains(t, got.Html, "Ada")
}

func TestHandleContactEmailMalformedPayloadDropped(t *testing.T) {
	worker := &Worker{
		notifier: NewContactNotifier(newTestMailer("http://unused.invalid"), "admin@example.com"),
	}

	task := asynq.NewTask(TaskTypeContactEmail, []byte("not json"))
	// A nil return keeps the queue from retrying a payload that can never send
	assert.NoError(t, worker.handleContactEmail(context.Background(), task))
}
