// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ConversationStore keeps the advice chat history. History is ephemeral
// presentation state, not Record Store state; losing it is harmless.
type ConversationStore interface {
	// Append adds a message to the end of the conversation.
	Append(ctx context.Context, message *entity.ChatMessage) error

	// Recent returns up to limit of the most recent messages, oldest first.
	Recent(ctx context.Context, limit int) ([]*entity.ChatMessage, error)

	// Clear discards the whole conversation.
	Clear(ctx context.Context) error
}
