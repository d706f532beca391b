// Package adapters provides implementations for external service integrations.
package adapters

import (
	"strings"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// agentKeywords maps coarse topic keywords to agent labels. Checked in
// order; the first bucket with a hit wins.
var agentKeywords = []struct {
	agent    entity.AgentType
	keywords []string
}{
	{entity.AgentDataCollection, []string{"add ", "record ", "log ", "i spent", "i paid", "i earned"}},
	{entity.AgentExpenseAnalysis, []string{"spending", "spend on", "where did", "biggest expense", "how much did"}},
	{entity.AgentBudgetPlanning, []string{"budget", "allocate", "plan my", "afford"}},
	{entity.AgentPrediction, []string{"next month", "predict", "forecast", "will i", "trend"}},
	{entity.AgentRecommendation, []string{"save", "saving", "advice", "recommend", "reduce", "cut down", "tips"}},
}

// ClassifyAgent picks an agent label for a user message from keyword
// heuristics. Used when the AI backend omits or mislabels agent_type, so a
// reply always carries a valid label.
func ClassifyAgent(message string) entity.AgentType {
	lower := strings.ToLower(message)
	for _, bucket := range agentKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.agent
			}
		}
	}
	return entity.AgentInteraction
}
