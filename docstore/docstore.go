// Package docstore holds the contact-message store. Messages live in redis as
// JSON documents, separate from the relational catalog: the two stores share
// no transaction, and a stored message stays stored even when everything
// after the write fails.
package docstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	client      *redis.Client
	messageRepo *MessageRepo
}

// Open connects to redis and verifies the connection with a ping. The caller
// treats a failed open as fatal: without the document store there is nowhere
// to put contact submissions.
func Open(ctx context.Context, addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Store{
		client:      client,
		messageRepo: NewMessageRepo(client),
	}, nil
}

func (s *Store) MessageRepo() *MessageRepo {
	return s.messageRepo
}

func (s *Store) Close() error {
	return s.client.Close()
}
