// Package adapters provides implementations for external service integrations.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GatewayAdviceService implements the AdviceService against any
// OpenAI-compatible chat completions endpoint.
type GatewayAdviceService struct {
	baseURL    string
	apiKey     string
	modelName  string
	httpClient *http.Client
}

// NewGatewayAdviceService creates a new gateway advice service instance.
func NewGatewayAdviceService(baseURL, apiKey, modelName string, timeout time.Duration) *GatewayAdviceService {
	return &GatewayAdviceService{
		baseURL:   baseURL,
		apiKey:    apiKey,
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// IsAvailable checks if the gateway is properly configured.
func (s *GatewayAdviceService) IsAvailable() bool {
	return s.baseURL != ""
}

type gatewayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type gatewayRequest struct {
	Model    string           `json:"model"`
	Messages []gatewayMessage `json:"messages"`
}

type gatewayResponse struct {
	Choices []struct {
		Message gatewayMessage `json:"message"`
	} `json:"choices"`
}

// Advise sends one advice request to the gateway and parses the JSON reply.
func (s *GatewayAdviceService) Advise(ctx context.Context, request *adapter.AdviceRequest) (*adapter.AdviceResult, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrAdviceUnavailable
	}

	payload := gatewayRequest{
		Model: s.modelName,
		Messages: []gatewayMessage{
			{Role: "user", Content: buildAdvicePrompt(request)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrAdviceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: gateway returned 429", domainerror.ErrAdviceRateLimited)
	case http.StatusPaymentRequired:
		return nil, fmt.Errorf("%w: gateway returned 402", domainerror.ErrAdviceQuotaExceeded)
	default:
		return nil, fmt.Errorf("%w: gateway returned %d", domainerror.ErrAdviceUnavailable, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read gateway response: %v", domainerror.ErrAdviceUnavailable, err)
	}

	var decoded gatewayResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode gateway response: %v", domainerror.ErrAdviceUnavailable, err)
	}
	if len(decoded.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty gateway response", domainerror.ErrAdviceUnavailable)
	}

	content := decoded.Choices[0].Message.Content

	var reply adviceReply
	if err := json.Unmarshal([]byte(cleanJSONReply(content)), &reply); err != nil {
		// The model answered in prose; keep the text and classify locally.
		return &adapter.AdviceResult{
			Response:  content,
			AgentType: ClassifyAgent(request.Message),
		}, nil
	}

	agentType := entity.AgentType(reply.AgentType)
	if !entity.IsValidAgentType(agentType) {
		agentType = ClassifyAgent(request.Message)
	}

	return &adapter.AdviceResult{
		Response:  reply.Response,
		AgentType: agentType,
	}, nil
}
