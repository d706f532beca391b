// Package adapters provides implementations for external service integrations.
package adapters

import (
	"fmt"
	"strings"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// buildAdvicePrompt renders the user's budget snapshot and conversation
// history into the instruction block both advice backends share. Both
// backends must answer with the same JSON shape so the controller never
// cares which one is wired.
func buildAdvicePrompt(request *adapter.AdviceRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance advisor inside a budgeting dashboard. Answer the user's question using ONLY the budget snapshot below. Be concrete: reference their actual numbers, keep replies under 120 words, and never invent transactions that are not listed.

BUDGET SNAPSHOT:
`)

	ctx := request.BudgetContext
	sb.WriteString(fmt.Sprintf("- Total monthly income: $%s\n", ctx.TotalIncome.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Total monthly expenses: $%s\n", ctx.TotalExpenses.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Savings (income - expenses): $%s\n", ctx.Savings.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Monthly savings goal: $%s\n", ctx.SavingsGoal.StringFixed(2)))

	if len(ctx.CategoryBudgets) > 0 {
		sb.WriteString("\nSUGGESTED CATEGORY BUDGETS:\n")
		for category, amount := range ctx.CategoryBudgets {
			sb.WriteString(fmt.Sprintf("- %s: $%s\n", category, amount.StringFixed(2)))
		}
	}

	if len(ctx.Recommendations) > 0 {
		sb.WriteString("\nDASHBOARD RECOMMENDATIONS ALREADY SHOWN TO THE USER:\n")
		for _, rec := range ctx.Recommendations {
			sb.WriteString("- " + rec + "\n")
		}
	}

	if len(ctx.RecentExpenses) > 0 {
		sb.WriteString("\nRECENT EXPENSES:\n")
		for _, e := range ctx.RecentExpenses {
			sb.WriteString(fmt.Sprintf("- %s: $%s (%s)\n", e.Category, e.Amount.StringFixed(2), e.Description))
		}
	}

	if len(request.ConversationHistory) > 0 {
		sb.WriteString("\nCONVERSATION SO FAR:\n")
		for _, turn := range request.ConversationHistory {
			sb.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
		}
	}

	sb.WriteString("\nUSER MESSAGE:\n" + request.Message + "\n")

	sb.WriteString(`
Respond with a single JSON object, no additional text:
{
  "response": "your reply to the user",
  "agent_type": "data-collection" | "expense-analysis" | "budget-planning" | "prediction" | "recommendation" | "interaction"
}

Pick the agent_type that best matches the question: data-collection for recording data, expense-analysis for questions about past spending, budget-planning for allocating money, prediction for next-month outlooks, recommendation for savings advice, interaction for everything else.
`)

	return sb.String()
}

// adviceReply is the JSON shape both advice backends answer with.
type adviceReply struct {
	Response  string `json:"response"`
	AgentType string `json:"agent_type"`
}

// cleanJSONReply strips markdown code fences some models wrap around JSON.
func cleanJSONReply(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
