// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

const (
	conversationKey = "advice:conversation"

	// conversationCap bounds the stored history; older turns fall off.
	conversationCap = 50
)

// RedisConversationStore keeps the advice chat history in a capped Redis
// list. History is presentation state only, so eviction loses nothing the
// record store cares about.
type RedisConversationStore struct {
	client *redis.Client
}

// NewRedisConversationStore creates a new Redis-backed conversation store.
func NewRedisConversationStore(client *redis.Client) adapter.ConversationStore {
	return &RedisConversationStore{
		client: client,
	}
}

// storedMessage is the JSON shape of one chat turn in Redis.
type storedMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	AgentType string    `json:"agent_type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Append adds a message to the end of the conversation and trims the list
// to the cap.
func (s *RedisConversationStore) Append(ctx context.Context, message *entity.ChatMessage) error {
	payload, err := json.Marshal(storedMessage{
		ID:        message.ID.String(),
		Role:      string(message.Role),
		Content:   message.Content,
		AgentType: string(message.AgentType),
		Timestamp: message.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to encode chat message: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, conversationKey, payload)
	pipe.LTrim(ctx, conversationKey, -conversationCap, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// Recent returns up to limit of the most recent messages, oldest first.
func (s *RedisConversationStore) Recent(ctx context.Context, limit int) ([]*entity.ChatMessage, error) {
	raw, err := s.client.LRange(ctx, conversationKey, int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation: %w", err)
	}

	messages := make([]*entity.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var sm storedMessage
		if err := json.Unmarshal([]byte(item), &sm); err != nil {
			// Skip turns written by an incompatible older build.
			continue
		}
		id, err := uuid.Parse(sm.ID)
		if err != nil {
			id = uuid.New()
		}
		messages = append(messages, &entity.ChatMessage{
			ID:        id,
			Role:      entity.ChatRole(sm.Role),
			Content:   sm.Content,
			AgentType: entity.AgentType(sm.AgentType),
			Timestamp: sm.Timestamp,
		})
	}
	return messages, nil
}

// Clear discards the whole conversation.
func (s *RedisConversationStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, conversationKey).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation: %w", err)
	}
	return nil
}
