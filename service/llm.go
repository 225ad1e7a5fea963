package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sreejith97/hireai/config"
	"github.com/sreejith97/hireai/model"
)

// LLMService is a client for the external drafting model (OpenAI-compatible
// chat completions API). Its output is treated as untrusted: items come back
// in inconsistent shapes and are normalized by the template item decoder.
type LLMService struct {
	config     *config.LLMConfig
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// draftResult is the JSON object the model is instructed to return
type draftResult struct {
	AssembledContract []model.TemplateItem `json:"assembled_contract"`
}

func NewLLMService(cfg *config.LLMConfig) *LLMService {
	return &LLMService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

const draftSystemPrompt = "You are a helpful legal assistant that outputs only JSON."

// Draft asks the model to assemble a contract draft from the available
// clauses. No retries: any failure is terminal for the request.
func (s *LLMService) Draft(ctx context.Context, clauses []*model.Clause, requirements map[string]string) ([]model.TemplateItem, error) {
	clausesJSON, err := json.Marshal(clauses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clauses: %w", err)
	}
	requirementsJSON, err := json.Marshal(requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	prompt := fmt.Sprintf(`You are assembling a legal contract.

Available Clauses:
%s

Requirements:
%s

Task:
- Select compatible clauses based on requirements.
- Resolve conflicts (Law overrides Policy).
- Organize into a professional employment contract structure: terms of
  employment, parties, job details, remuneration, probation period, working
  conditions, termination, end of service, non-compete if applicable.
- Use EXACT placeholders for variable data: {name}, {role}, {salary},
  {allowances}, {start_date}, {company_name}, {company_address}.
- Return a JSON object with "assembled_contract" containing a list of text
  blocks.
- You MUST rewrite clauses to form a cohesive, professional document. Do not
  just list disjointed text.`, clausesJSON, requirementsJSON)

	reqBody := chatRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: draftSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
	}
	reqBody.ResponseFormat.Type = "json_object"

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.APIURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, body: %s", err, string(body))
	}
	if result.Error != nil {
		return nil, fmt.Errorf("LLM API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("LLM returned no choices")
	}

	var draft draftResult
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft content: %w", err)
	}

	return draft.AssembledContract, nil
}
