// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GeminiAdviceService implements the AdviceService using Google Gemini.
type GeminiAdviceService struct {
	apiKey    string
	modelName string
}

// NewGeminiAdviceService creates a new Gemini advice service instance.
func NewGeminiAdviceService(apiKey, modelName string) *GeminiAdviceService {
	return &GeminiAdviceService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiAdviceService) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise sends one advice request to Gemini and parses the JSON reply.
func (s *GeminiAdviceService) Advise(ctx context.Context, request *adapter.AdviceRequest) (*adapter.AdviceResult, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrAdviceUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"

	prompt := buildAdvicePrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return parseGeminiReply(resp, request.Message)
}

// mapGeminiError translates provider failures onto the advice sentinels so
// the use case can pick the matching fallback.
func mapGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", domainerror.ErrAdviceRateLimited, apiErr.Message)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %s", domainerror.ErrAdviceQuotaExceeded, apiErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", domainerror.ErrAdviceUnavailable, err)
}

// parseGeminiReply extracts the JSON reply from a Gemini response.
func parseGeminiReply(resp *genai.GenerateContentResponse, userMessage string) (*adapter.AdviceResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: empty response", domainerror.ErrAdviceUnavailable)
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("%w: no text content in response", domainerror.ErrAdviceUnavailable)
	}

	var reply adviceReply
	if err := json.Unmarshal([]byte(cleanJSONReply(textContent)), &reply); err != nil {
		// Some replies ignore the JSON instruction; take the raw text.
		return &adapter.AdviceResult{
			Response:  textContent,
			AgentType: ClassifyAgent(userMessage),
		}, nil
	}

	agentType := entity.AgentType(reply.AgentType)
	if !entity.IsValidAgentType(agentType) {
		agentType = ClassifyAgent(userMessage)
	}

	return &adapter.AdviceResult{
		Response:  reply.Response,
		AgentType: agentType,
	}, nil
}
