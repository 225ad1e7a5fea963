package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/sreejith97/hireai/config"
)

// ExtractService is a client for the external text extraction API. The core
// only depends on getting a string back for a document payload; extraction
// accuracy is the collaborator's problem.
type ExtractService struct {
	config     *config.ExtractConfig
	httpClient *http.Client
}

// ExtractResponse represents the response from the extraction API
type ExtractResponse struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Data    struct {
		Text  string `json:"text"`
		Pages int    `json:"pages"`
	} `json:"data"`
}

func NewExtractService(cfg *config.ExtractConfig) *ExtractService {
	return &ExtractService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ExtractText sends a document payload to the extraction API and returns
// the extracted plain text. No retries are performed; a failure here is
// terminal for the request that triggered it.
func (s *ExtractService) ExtractText(ctx context.Context, filename string, payload []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return "", fmt.Errorf("failed to write payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.APIURL+"/extract/text", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.APIToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "*/*")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result ExtractResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w, body: %s", err, string(respBody))
	}

	if result.Code != 0 {
		return "", fmt.Errorf("extraction API error: %s", result.Message)
	}

	return result.Data.Text, nil
}
