package advice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type stubExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *stubExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *stubExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubExpenseRepo) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return r.expenses, nil
}

type stubIncomeRepo struct {
	incomes []*entity.Income
}

func (r *stubIncomeRepo) Create(_ context.Context, i *entity.Income) error {
	r.incomes = append(r.incomes, i)
	return nil
}

func (r *stubIncomeRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubIncomeRepo) FindAll(_ context.Context) ([]*entity.Income, error) {
	return r.incomes, nil
}

type stubGoalRepo struct{}

func (r *stubGoalRepo) Create(_ context.Context, _ *entity.SavingsGoal) error { return nil }
func (r *stubGoalRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }
func (r *stubGoalRepo) Contribute(_ context.Context, _ uuid.UUID, _ decimal.Decimal) error {
	return nil
}
func (r *stubGoalRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.SavingsGoal, error) {
	return nil, nil
}
func (r *stubGoalRepo) FindAll(_ context.Context) ([]*entity.SavingsGoal, error) {
	return nil, nil
}

type stubSettingsRepo struct {
	target decimal.Decimal
}

func (r *stubSettingsRepo) GetSavingsGoalTarget(_ context.Context) (decimal.Decimal, error) {
	return r.target, nil
}

func (r *stubSettingsRepo) SetSavingsGoalTarget(_ context.Context, v decimal.Decimal) error {
	r.target = v
	return nil
}

type memoryConversation struct {
	messages []*entity.ChatMessage
}

func (s *memoryConversation) Append(_ context.Context, m *entity.ChatMessage) error {
	s.messages = append(s.messages, m)
	return nil
}

func (s *memoryConversation) Recent(_ context.Context, limit int) ([]*entity.ChatMessage, error) {
	if len(s.messages) <= limit {
		return s.messages, nil
	}
	return s.messages[len(s.messages)-limit:], nil
}

func (s *memoryConversation) Clear(_ context.Context) error {
	s.messages = nil
	return nil
}

type stubAdviceService struct {
	result      *adapter.AdviceResult
	err         error
	lastRequest *adapter.AdviceRequest
}

func (s *stubAdviceService) Advise(_ context.Context, req *adapter.AdviceRequest) (*adapter.AdviceResult, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAdviceService) IsAvailable() bool { return true }

func newTestUseCase(service *stubAdviceService) (*SendMessageUseCase, *memoryConversation, *stubExpenseRepo) {
	expenseRepo := &stubExpenseRepo{}
	incomeRepo := &stubIncomeRepo{incomes: []*entity.Income{
		entity.NewIncome("Salary", decimal.NewFromInt(2000), true, "2026-02-01"),
	}}
	derive := budget.NewDeriveBudgetPlanUseCase(expenseRepo, incomeRepo, &stubGoalRepo{}, &stubSettingsRepo{})
	conversation := &memoryConversation{}
	uc := NewSendMessageUseCase(derive, expenseRepo, conversation, service)
	return uc, conversation, expenseRepo
}

func TestSendMessage_Success(t *testing.T) {
	service := &stubAdviceService{result: &adapter.AdviceResult{
		Response:  "Try meal prepping to cut food costs.",
		AgentType: entity.AgentRecommendation,
	}}
	uc, conversation, _ := newTestUseCase(service)

	output, err := uc.Execute(context.Background(), SendMessageInput{Message: "How do I save on food?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Fallback {
		t.Error("expected a live reply, got fallback")
	}
	if output.Reply.AgentType != entity.AgentRecommendation {
		t.Errorf("expected recommendation agent, got %s", output.Reply.AgentType)
	}
	if len(conversation.messages) != 2 {
		t.Fatalf("expected user and assistant turns stored, got %d", len(conversation.messages))
	}
	if conversation.messages[0].Role != entity.ChatRoleUser {
		t.Error("expected user turn stored first")
	}

	if !service.lastRequest.BudgetContext.TotalIncome.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected budget context income 2000, got %s", service.lastRequest.BudgetContext.TotalIncome)
	}
}

func TestSendMessage_EmptyMessageRejected(t *testing.T) {
	uc, conversation, _ := newTestUseCase(&stubAdviceService{})

	_, err := uc.Execute(context.Background(), SendMessageInput{Message: "   "})

	var adviceErr *domainerror.AdviceError
	if !errors.As(err, &adviceErr) {
		t.Fatalf("expected AdviceError, got %v", err)
	}
	if adviceErr.Code != domainerror.ErrCodeMissingAdviceMessage {
		t.Errorf("expected missing-message code, got %s", adviceErr.Code)
	}
	if len(conversation.messages) != 0 {
		t.Error("rejected message must not be stored")
	}
}

func TestSendMessage_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fragment string
	}{
		{"rate limited", domainerror.ErrAdviceRateLimited, "a lot of questions"},
		{"quota exceeded", domainerror.ErrAdviceQuotaExceeded, "quota"},
		{"generic failure", errors.New("connection refused"), "couldn't reach"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, conversation, _ := newTestUseCase(&stubAdviceService{err: tt.err})

			output, err := uc.Execute(context.Background(), SendMessageInput{Message: "help"})
			if err != nil {
				t.Fatalf("service failure must not propagate, got %v", err)
			}
			if !output.Fallback {
				t.Error("expected fallback reply")
			}
			if !strings.Contains(output.Reply.Content, tt.fragment) {
				t.Errorf("expected fallback containing %q, got %q", tt.fragment, output.Reply.Content)
			}
			if output.Reply.AgentType != entity.AgentInteraction {
				t.Errorf("fallback must use interaction agent, got %s", output.Reply.AgentType)
			}
			// Both turns are still recorded so the chat stays coherent.
			if len(conversation.messages) != 2 {
				t.Errorf("expected 2 stored turns, got %d", len(conversation.messages))
			}
		})
	}
}

func TestSendMessage_UnknownAgentLabelNormalized(t *testing.T) {
	service := &stubAdviceService{result: &adapter.AdviceResult{
		Response:  "Here is your plan.",
		AgentType: "galaxy-brain",
	}}
	uc, _, _ := newTestUseCase(service)

	output, err := uc.Execute(context.Background(), SendMessageInput{Message: "plan my month"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Reply.AgentType != entity.AgentInteraction {
		t.Errorf("expected unknown label normalized to interaction, got %s", output.Reply.AgentType)
	}
}

func TestSendMessage_ContextCaps(t *testing.T) {
	service := &stubAdviceService{result: &adapter.AdviceResult{
		Response:  "ok",
		AgentType: entity.AgentInteraction,
	}}
	uc, conversation, expenseRepo := newTestUseCase(service)

	for i := 0; i < 15; i++ {
		_ = expenseRepo.Create(context.Background(),
			entity.NewExpense(entity.CategoryFood, decimal.NewFromInt(int64(i+1)), "snack", "2026-02-01", false, false))
	}
	for i := 0; i < 10; i++ {
		_ = conversation.Append(context.Background(),
			entity.NewChatMessage(entity.ChatRoleUser, "old message", ""))
	}

	_, err := uc.Execute(context.Background(), SendMessageInput{Message: "status?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(service.lastRequest.BudgetContext.RecentExpenses); got != 10 {
		t.Errorf("expected context capped to 10 recent expenses, got %d", got)
	}
	// The last of the 15 expenses must be included, the first dropped.
	last := service.lastRequest.BudgetContext.RecentExpenses[9]
	if !last.Amount.Equal(decimal.NewFromInt(15)) {
		t.Errorf("expected most recent expense amount 15, got %s", last.Amount)
	}

	if got := len(service.lastRequest.ConversationHistory); got != 6 {
		t.Errorf("expected history capped to 6 turns, got %d", got)
	}
}
