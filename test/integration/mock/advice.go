package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// AdviceMock stands in for the OpenAI-compatible advice gateway. Scenarios
// script its reply or its failure status before sending chat messages.
type AdviceMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	status    int
	response  string
	agentType string
	requests  int
}

// NewAdviceServer creates a started advice gateway mock with a default reply.
func NewAdviceServer() *AdviceMock {
	a := &AdviceMock{
		status:    http.StatusOK,
		response:  "Here is some advice.",
		agentType: "interaction",
	}
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
	return a
}

func (a *AdviceMock) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requests++

	if a.status != http.StatusOK {
		w.WriteHeader(a.status)
		return
	}

	reply, _ := json.Marshal(map[string]string{
		"response":   a.response,
		"agent_type": a.agentType,
	})
	body := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": string(reply)}},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// URL returns the mock gateway base URL.
func (a *AdviceMock) URL() string {
	return a.server.URL
}

// SetReply scripts the next successful reply.
func (a *AdviceMock) SetReply(response, agentType string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = http.StatusOK
	a.response = response
	a.agentType = agentType
}

// SetStatus scripts a failure status for subsequent requests.
func (a *AdviceMock) SetStatus(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
}

// Requests returns how many calls the mock has received.
func (a *AdviceMock) Requests() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.requests
}

// Close shuts the mock server down.
func (a *AdviceMock) Close() {
	a.server.Close()
}
