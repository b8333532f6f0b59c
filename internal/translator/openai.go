package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/valpere/ytali/internal/postprocess"
)

const DefaultOpenAIBaseURL = "https://api.openai.com"

// OpenAIService talks to the OpenAI Responses API. It relies on the HTTP
// client default and sets no timeout of its own.
type OpenAIService struct {
	baseURL string
	client  *http.Client
}

func NewOpenAIService(baseURL string) *OpenAIService {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	return &OpenAIService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (s *OpenAIService) Name() ProviderID {
	return ProviderOpenAI
}

type openAIRequest struct {
	Model        string  `json:"model"`
	Instructions string  `json:"instructions"`
	Input        string  `json:"input"`
	Temperature  float64 `json:"temperature"`
}

type openAIResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (s *OpenAIService) Translate(ctx context.Context, cfg ModelConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: string(s.Name())}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if strings.TrimSpace(cfg.APIKey) == "" {
		result.Error = "OpenAI API key required"
		return result, fmt.Errorf("%w: missing OPENAI_API_KEY for OpenAI provider", ErrConfig)
	}
	if strings.TrimSpace(cfg.Model) == "" {
		result.Error = "OpenAI model required"
		return result, fmt.Errorf("%w: missing OpenAI model name", ErrConfig)
	}

	jsonData, err := json.Marshal(openAIRequest{
		Model:        cfg.Model,
		Instructions: req.Instructions,
		Input:        req.Text,
		Temperature:  Temperature,
	})
	if err != nil {
		result.Error = fmt.Sprintf("failed to marshal request: %v", err)
		return result, err
	}

	headers := map[string]string{"Authorization": "Bearer " + strings.TrimSpace(cfg.APIKey)}
	body, err := postJSON(ctx, s.client, s.Name(), s.baseURL+"/v1/responses", headers, jsonData)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	text, usage, err := extractOpenAIText(body)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	result.TranslatedText = postprocess.Clean(text)
	result.Metadata = map[string]string{
		"model":         cfg.Model,
		"input_tokens":  fmt.Sprintf("%d", usage.InputTokens),
		"output_tokens": fmt.Sprintf("%d", usage.OutputTokens),
	}
	return result, nil
}

// extractOpenAIText concatenates every output_text block of every message
// item, which is what the SDKs expose as output_text.
func extractOpenAIText(body []byte) (string, openAIUsage, error) {
	var resp openAIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", openAIUsage{}, shapeError(ProviderOpenAI, body)
	}

	var sb strings.Builder
	found := false
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, block := range item.Content {
			if block.Type == "output_text" {
				sb.WriteString(block.Text)
				found = true
			}
		}
	}
	if !found {
		return "", openAIUsage{}, shapeError(ProviderOpenAI, body)
	}
	return sb.String(), openAIUsage(resp.Usage), nil
}

type openAIUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
