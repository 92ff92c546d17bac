package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/khushprajapati/portfolio-backend/models"
)

const (
	messageKeyPrefix = "message:"
	messageIndexKey  = "messages:by-created"
)

// MessageRepo persists contact messages as JSON documents. Each message lives
// under message:<id>; a sorted set keyed by creation time in unix nanoseconds
// gives newest-first listing without scanning keys.
type MessageRepo struct {
	client *redis.Client
}

func NewMessageRepo(client *redis.Client) *MessageRepo {
	return &MessageRepo{client}
}

func messageKey(id uuid.UUID) string {
	return messageKeyPrefix + id.String()
}

// Add stores a new message and indexes it by creation time.
func (r *MessageRepo) Add(ctx context.Context, message *models.Message) error {
	doc, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, messageKey(message.ID), doc, 0)
	pipe.ZAdd(ctx, messageIndexKey, redis.Z{
		Score:  float64(message.CreatedAt.UnixNano()),
		Member: message.ID.String(),
	})
	_, err = pipe.Exec(ctx)
	return err
}

// FindAll returns every stored message, newest first.
func (r *MessageRepo) FindAll(ctx context.Context) ([]*models.Message, error) {
	ids, err := r.client.ZRevRange(ctx, messageIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]*models.Message, 0, len(ids))
	for _, id := range ids {
		doc, err := r.client.Get(ctx, messageKeyPrefix+id).Result()
		if errors.Is(err, redis.Nil) {
			// Index entry outlived its document; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}

		var message models.Message
		if err := json.Unmarshal([]byte(doc), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message %s: %w", id, err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

// FindByID returns a message by its ID, or (nil, nil) when absent.
func (r *MessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	doc, err := r.client.Get(ctx, messageKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var message models.Message
	if err := json.Unmarshal([]byte(doc), &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message %s: %w", id, err)
	}
	return &message, nil
}

// MarkRead flips the read flag on a stored message. Returns (false, nil) when
// the message does not exist.
func (r *MessageRepo) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	message, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if message == nil {
		return false, nil
	}

	message.Read = true
	doc, err := json.Marshal(message)
	if err != nil {
		return false, fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := r.client.Set(ctx, messageKey(id), doc, 0).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a message and its index entry. Returns (false, nil) when the
// message does not exist.
func (r *MessageRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := r.client.Del(ctx, messageKey(id)).Result()
	if err != nil {
		return false, err
	}
	if err := r.client.ZRem(ctx, messageIndexKey, id.String()).Err(); err != nil {
		return false, err
	}
	return deleted > 0, nil
}
