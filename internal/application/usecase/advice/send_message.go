// Package advice contains the AI advice chat use cases.
package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

const (
	// historyLimit is how many prior messages accompany each request.
	historyLimit = 6

	// recentExpenseLimit is how many recent expenses go into the context.
	recentExpenseLimit = 10
)

// Locally generated replies used when the external AI service fails. The
// chat must degrade, never crash; the distinction between the three only
// changes the wording shown to the user.
const (
	fallbackRateLimited = "I'm receiving a lot of questions right now. Please give me a moment and ask again - your budget data is untouched."
	fallbackQuota       = "My advice quota is used up for now. In the meantime, the recommendations on your dashboard are computed locally from your real numbers."
	fallbackGeneric     = "Sorry, I couldn't reach the advice service just now. Please try again shortly - your records are safe and nothing was lost."
)

// SendMessageInput represents the input for an advice chat turn.
type SendMessageInput struct {
	Message string
}

// SendMessageOutput represents the output of an advice chat turn.
type SendMessageOutput struct {
	Reply *entity.ChatMessage
	// Fallback is true when the reply was generated locally because the
	// external service failed.
	Fallback bool
}

// SendMessageUseCase sends one user message to the AI advice service with
// full budget context attached, storing both turns in the conversation.
// Service failures degrade to a local fallback reply and never touch the
// record store.
type SendMessageUseCase struct {
	deriveUseCase *budget.DeriveBudgetPlanUseCase
	expenseRepo   adapter.ExpenseRepository
	conversation  adapter.ConversationStore
	adviceService adapter.AdviceService
}

// NewSendMessageUseCase creates a new SendMessageUseCase instance.
func NewSendMessageUseCase(
	deriveUseCase *budget.DeriveBudgetPlanUseCase,
	expenseRepo adapter.ExpenseRepository,
	conversation adapter.ConversationStore,
	adviceService adapter.AdviceService,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		deriveUseCase: deriveUseCase,
		expenseRepo:   expenseRepo,
		conversation:  conversation,
		adviceService: adviceService,
	}
}

// Execute performs one chat round trip.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeMissingAdviceMessage,
			"message must not be empty",
			domainerror.ErrMissingAdviceMessage,
		)
	}

	request, err := uc.buildRequest(ctx, message)
	if err != nil {
		return nil, err
	}

	userTurn := entity.NewChatMessage(entity.ChatRoleUser, message, "")
	if err := uc.conversation.Append(ctx, userTurn); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	reply, fallback := uc.advise(ctx, request)

	if err := uc.conversation.Append(ctx, reply); err != nil {
		return nil, fmt.Errorf("failed to store assistant message: %w", err)
	}

	return &SendMessageOutput{Reply: reply, Fallback: fallback}, nil
}

// buildRequest assembles the freshly derived budget context, the recent
// expenses, and the capped conversation history.
func (uc *SendMessageUseCase) buildRequest(ctx context.Context, message string) (*adapter.AdviceRequest, error) {
	planOutput, err := uc.deriveUseCase.Execute(ctx, budget.DeriveBudgetPlanInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to derive budget context: %w", err)
	}
	plan := planOutput.Plan

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	if len(expenses) > recentExpenseLimit {
		expenses = expenses[len(expenses)-recentExpenseLimit:]
	}
	recent := make([]adapter.ExpenseForAdvice, 0, len(expenses))
	for _, e := range expenses {
		recent = append(recent, adapter.ExpenseForAdvice{
			Category:    e.Category,
			Amount:      e.Amount,
			Description: e.Description,
		})
	}

	history, err := uc.conversation.Recent(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation history: %w", err)
	}
	turns := make([]adapter.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, adapter.ChatTurn{Role: m.Role, Content: m.Content})
	}

	return &adapter.AdviceRequest{
		Message: message,
		BudgetContext: adapter.BudgetContext{
			TotalIncome:     plan.TotalIncome,
			TotalExpenses:   plan.TotalExpenses,
			Savings:         plan.Savings,
			SavingsGoal:     plan.SavingsGoalTarget,
			CategoryBudgets: plan.CategoryBudgets,
			Recommendations: plan.Recommendations,
			RecentExpenses:  recent,
		},
		ConversationHistory: turns,
	}, nil
}

// advise calls the external service and substitutes a local fallback reply
// on any failure.
func (uc *SendMessageUseCase) advise(ctx context.Context, request *adapter.AdviceRequest) (*entity.ChatMessage, bool) {
	result, err := uc.adviceService.Advise(ctx, request)
	if err != nil {
		return entity.NewChatMessage(entity.ChatRoleAssistant, fallbackFor(err), entity.AgentInteraction), true
	}

	agentType := result.AgentType
	if !entity.IsValidAgentType(agentType) {
		agentType = entity.AgentInteraction
	}

	return entity.NewChatMessage(entity.ChatRoleAssistant, result.Response, agentType), false
}

// fallbackFor picks the fallback wording matching the failure kind.
func fallbackFor(err error) string {
	switch {
	case errors.Is(err, domainerror.ErrAdviceRateLimited):
		return fallbackRateLimited
	case errors.Is(err, domainerror.ErrAdviceQuotaExceeded):
		return fallbackQuota
	default:
		return fallbackGeneric
	}
}
