// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// AgentType labels which advisory agent produced an assistant message.
// The label is cosmetic metadata for the UI, never logic-bearing.
type AgentType string

const (
	AgentDataCollection  AgentType = "data-collection"
	AgentExpenseAnalysis AgentType = "expense-analysis"
	AgentBudgetPlanning  AgentType = "budget-planning"
	AgentPrediction      AgentType = "prediction"
	AgentRecommendation  AgentType = "recommendation"
	AgentInteraction     AgentType = "interaction"
)

// IsValidAgentType reports whether t belongs to the fixed label set.
func IsValidAgentType(t AgentType) bool {
	switch t {
	case AgentDataCollection, AgentExpenseAnalysis, AgentBudgetPlanning,
		AgentPrediction, AgentRecommendation, AgentInteraction:
		return true
	}
	return false
}

// ChatMessage represents one turn in an advice conversation.
type ChatMessage struct {
	ID        uuid.UUID
	Role      ChatRole
	Content   string
	AgentType AgentType // Empty for user messages
	Timestamp time.Time
}

// NewChatMessage creates a new ChatMessage entity.
func NewChatMessage(role ChatRole, content string, agentType AgentType) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		AgentType: agentType,
		Timestamp: time.Now().UTC(),
	}
}
