package services

import (
	"context"
	"encoding/json"
	"fmt"
	"html"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	// TaskTypeContactEmail is the queue task kind for contact notifications.
	TaskTypeContactEmail = "email:contact"

	notificationQueue = "default"
	notificationRetry = 3
)

// ContactNotification carries what the admin email needs about a submission.
type ContactNotification struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Dispatcher hands a contact notification off for best-effort delivery. A
// dispatch failure is the caller's to log, never to surface: the message is
// already durably stored by the time Dispatch runs.
type Dispatcher interface {
	// Dispatch schedules delivery of the notification
	Dispatch(n *ContactNotification) error
	// IsAsync returns true if delivery happens outside the calling request
	IsAsync() bool
	// Close gracefully shuts down the dispatcher
	Close() error
}

// ContactNotifier renders and sends the admin notification email.
type ContactNotifier struct {
	mailer     *Mailer
	adminEmail string
}

func NewContactNotifier(mailer *Mailer, adminEmail string) *ContactNotifier {
	return &ContactNotifier{mailer: mailer, adminEmail: adminEmail}
}

// Notify sends the notification email for one submission.
func (cn *ContactNotifier) Notify(ctx context.Context, n *ContactNotification) error {
	if cn.adminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is not configured")
	}

	subject := fmt.Sprintf("New Contact Form: %s", n.Subject)
	body := fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>From:</strong> %s (%s)</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Sent from your portfolio website</small></p>`,
		html.EscapeString(n.Name),
		html.EscapeString(n.Email),
		html.EscapeString(n.Subject),
		html.EscapeString(n.Body),
	)

	return cn.mailer.Send(ctx, subject, body, []string{cn.adminEmail})
}

// AsyncDispatcher implements Dispatcher on an asynq (redis-backed) queue.
type AsyncDispatcher struct {
	client *asynq.Client
}

// NewAsyncDispatcher creates a redis-backed dispatcher. The connection is
// verified up front so a dead queue falls back to sync dispatch at startup
// instead of failing every submission later.
func NewAsyncDispatcher(addr, password string, db int) (*AsyncDispatcher, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     addr,
		Password: password,
		DB:       db,
	}

	client := asynq.NewClient(redisOpt)

	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()
	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncDispatcher{client: client}, nil
}

// Dispatch enqueues the notification for the worker to deliver.
func (d *AsyncDispatcher) Dispatch(n *ContactNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeContactEmail, payload)
	info, err := d.client.Enqueue(task,
		asynq.Queue(notificationQueue),
		asynq.MaxRetry(notificationRetry),
	)
	if err != nil {
		return err
	}

	log.Debug().Str("taskId", info.ID).Str("messageId", n.MessageID).Msg("Contact notification enqueued")
	return nil
}

func (d *AsyncDispatcher) IsAsync() bool {
	return true
}

func (d *AsyncDispatcher) Close() error {
	return d.client.Close()
}

// SyncDispatcher implements Dispatcher without a queue: delivery runs in a
// goroutine spawned from the request, and failures only reach the log.
type SyncDispatcher struct {
	notifier *ContactNotifier
}

func NewSyncDispatcher(notifier *ContactNotifier) *SyncDispatcher {
	return &SyncDispatcher{notifier: notifier}
}

// Dispatch fires delivery in the background. The request context is not
// reused: the response returns before delivery finishes.
func (d *SyncDispatcher) Dispatch(n *ContactNotification) error {
	go func() {
		if err := d.notifier.Notify(context.Background(), n); err != nil {
			log.Error().Err(err).Str("messageId", n.MessageID).Msg("Contact notification failed")
		}
	}()
	return nil
}

func (d *SyncDispatcher) IsAsync() bool {
	return false
}

func (d *SyncDispatcher) Close() error {
	return nil
}
