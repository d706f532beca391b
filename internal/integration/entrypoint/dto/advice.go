// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// AdviceRequest represents the request body for an advice chat message.
type AdviceRequest struct {
	Message string `json:"message" binding:"required"`
}

// AdviceResponse represents the assistant's reply to a chat message.
type AdviceResponse struct {
	Response  string `json:"response"`
	AgentType string `json:"agent_type"`
	// Fallback is true when the reply was generated locally because the
	// external AI service failed.
	Fallback bool `json:"fallback"`
}

// ChatMessageResponse represents one stored chat turn.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	AgentType string    `json:"agent_type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatHistoryResponse represents the recent conversation, oldest first.
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ToChatMessageResponse converts a ChatMessage entity to its DTO.
func ToChatMessageResponse(m *entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID.String(),
		Role:      string(m.Role),
		Content:   m.Content,
		AgentType: string(m.AgentType),
		Timestamp: m.Timestamp,
	}
}

// ToChatHistoryResponse converts stored chat turns to a ChatHistoryResponse.
func ToChatHistoryResponse(messages []*entity.ChatMessage) ChatHistoryResponse {
	items := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		items[i] = ToChatMessageResponse(m)
	}
	return ChatHistoryResponse{
		Messages: items,
	}
}
