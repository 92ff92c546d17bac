package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Worker consumes contact-notification tasks from the queue and delivers the
// emails. It runs in-process next to the HTTP server.
type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	notifier *ContactNotifier
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

func NewWorker(addr, password string, db int, notifier *ContactNotifier) *Worker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     addr,
		Password: password,
		DB:       db,
	}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				notificationQueue: 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("taskType", task.Type()).Msg("Error processing task")
			}),
		},
	)

	return &Worker{
		server:   server,
		mux:      asynq.NewServeMux(),
		notifier: notifier,
	}
}

// Start begins processing tasks
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.mux.HandleFunc(TaskTypeContactEmail, w.handleContactEmail)

	w.running = true
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		log.Info().Msg("Starting notification worker")
		if err := w.server.Run(w.mux); err != nil {
			log.Error().Err(err).Msg("Notification worker stopped")
		}
	}()

	return nil
}

func (w *Worker) handleContactEmail(ctx context.Context, task *asynq.Task) error {
	var n ContactNotification
	if err := json.Unmarshal(task.Payload(), &n); err != nil {
		// Unparseable payloads never become sendable; drop instead of retrying.
		log.Error().Err(err).Msg("Dropping malformed contact notification task")
		return nil
	}
	return w.notifier.Notify(ctx, &n)
}

// Stop gracefully shuts down the worker
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	log.Info().Msg("Shutting down notification worker")
	w.server.Shutdown()
	w.running = false
	w.wg.Wait()
}
