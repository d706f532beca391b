package adapters

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

func adviceRequest() *adapter.AdviceRequest {
	return &adapter.AdviceRequest{
		Message: "how can I save more?",
		BudgetContext: adapter.BudgetContext{
			TotalIncome:   decimal.NewFromInt(2000),
			TotalExpenses: decimal.NewFromInt(1500),
			Savings:       decimal.NewFromInt(500),
			SavingsGoal:   decimal.NewFromInt(400),
		},
	}
}

func newGatewayWithHandler(t *testing.T, handler http.HandlerFunc) *GatewayAdviceService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGatewayAdviceService(server.URL, "test-key", "test-model", 5*time.Second)
}

func TestGatewayAdviceService_Success(t *testing.T) {
	service := newGatewayWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("missing bearer token")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"response\":\"Cut entertainment by $50.\",\"agent_type\":\"recommendation\"}"}}]}`))
	})

	result, err := service.Advise(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Response != "Cut entertainment by $50." {
		t.Errorf("unexpected response %q", result.Response)
	}
	if result.AgentType != entity.AgentRecommendation {
		t.Errorf("expected recommendation agent, got %s", result.AgentType)
	}
}

func TestGatewayAdviceService_ProseReplyClassifiedLocally(t *testing.T) {
	service := newGatewayWithHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Just spend less on snacks."}}]}`))
	})

	result, err := service.Advise(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Response != "Just spend less on snacks." {
		t.Errorf("unexpected response %q", result.Response)
	}
	// "save" in the question maps to the recommendation agent.
	if result.AgentType != entity.AgentRecommendation {
		t.Errorf("expected locally classified agent, got %s", result.AgentType)
	}
}

func TestGatewayAdviceService_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, domainerror.ErrAdviceRateLimited},
		{"quota exceeded", http.StatusPaymentRequired, domainerror.ErrAdviceQuotaExceeded},
		{"server error", http.StatusInternalServerError, domainerror.ErrAdviceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newGatewayWithHandler(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := service.Advise(context.Background(), adviceRequest())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGatewayAdviceService_NotConfigured(t *testing.T) {
	service := NewGatewayAdviceService("", "", "", time.Second)

	if service.IsAvailable() {
		t.Error("service without a URL must report unavailable")
	}
	_, err := service.Advise(context.Background(), adviceRequest())
	if !errors.Is(err, domainerror.ErrAdviceUnavailable) {
		t.Errorf("expected unavailable error, got %v", err)
	}
}
