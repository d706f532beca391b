// Package advice contains the AI advice chat use cases.
package advice

import (
	"context"
	"fmt"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// GetHistoryInput represents the input for fetching chat history.
type GetHistoryInput struct {
	Limit int // Zero means the default history window
}

// GetHistoryOutput represents the output of fetching chat history.
type GetHistoryOutput struct {
	Messages []*entity.ChatMessage
}

// GetHistoryUseCase returns the recent advice conversation, oldest first.
type GetHistoryUseCase struct {
	conversation adapter.ConversationStore
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(conversation adapter.ConversationStore) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		conversation: conversation,
	}
}

// Execute fetches the recent conversation.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = historyLimit
	}

	messages, err := uc.conversation.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation history: %w", err)
	}

	return &GetHistoryOutput{Messages: messages}, nil
}
