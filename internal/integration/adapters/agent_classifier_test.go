package adapters

import (
	"testing"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func TestClassifyAgent(t *testing.T) {
	tests := []struct {
		message string
		want    entity.AgentType
	}{
		{"I spent 40 dollars on dinner yesterday", entity.AgentDataCollection},
		{"What is my biggest expense this month?", entity.AgentExpenseAnalysis},
		{"Help me plan my budget for March", entity.AgentBudgetPlanning},
		{"What will my spending look like next month?", entity.AgentPrediction},
		{"Any tips to cut down on food costs?", entity.AgentRecommendation},
		{"Hello there!", entity.AgentInteraction},
		{"", entity.AgentInteraction},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := ClassifyAgent(tt.message); got != tt.want {
				t.Errorf("ClassifyAgent(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}
