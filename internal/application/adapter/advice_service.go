// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ExpenseForAdvice is a trimmed expense view included in the advice context.
type ExpenseForAdvice struct {
	Category    entity.ExpenseCategory
	Amount      decimal.Decimal
	Description string
}

// BudgetContext carries the derived budget snapshot sent alongside every
// chat message so the AI can reference the user's actual numbers.
type BudgetContext struct {
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	Savings         decimal.Decimal
	SavingsGoal     decimal.Decimal
	CategoryBudgets map[entity.ExpenseCategory]decimal.Decimal
	Recommendations []string
	RecentExpenses  []ExpenseForAdvice
}

// ChatTurn is one prior message of the conversation history.
type ChatTurn struct {
	Role    entity.ChatRole
	Content string
}

// AdviceRequest is a single advice round trip to the AI service.
type AdviceRequest struct {
	Message             string
	BudgetContext       BudgetContext
	ConversationHistory []ChatTurn
}

// AdviceResult is the AI's reply plus a coarse agent label.
type AdviceResult struct {
	Response  string
	AgentType entity.AgentType
}

// AdviceService defines the interface for the external conversational AI.
// Implementations map provider failures onto the advice sentinel errors
// (rate limited, quota exceeded, unavailable) so the use case can pick the
// right fallback message.
type AdviceService interface {
	// Advise sends one message with full context and returns the reply.
	Advise(ctx context.Context, request *AdviceRequest) (*AdviceResult, error)

	// IsAvailable checks if the service is properly configured.
	IsAvailable() bool
}
