package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/valpere/ytali/internal/postprocess"
)

const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiService calls generateContent with query-string authentication.
type GeminiService struct {
	baseURL string
	client  *http.Client
}

func NewGeminiService(baseURL string) *GeminiService {
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	return &GeminiService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (s *GeminiService) Name() ProviderID {
	return ProviderGemini
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"systemInstruction"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func (s *GeminiService) Translate(ctx context.Context, cfg ModelConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: string(s.Name())}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if strings.TrimSpace(cfg.APIKey) == "" {
		result.Error = "Gemini API key required"
		return result, fmt.Errorf("%w: missing GEMINI_API_KEY for Gemini provider", ErrConfig)
	}
	if strings.TrimSpace(cfg.Model) == "" {
		result.Error = "Gemini model required"
		return result, fmt.Errorf("%w: missing Gemini model name", ErrConfig)
	}

	geminiReq := geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: req.Instructions}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Text}}}},
	}
	geminiReq.GenerationConfig.Temperature = Temperature

	jsonData, err := json.Marshal(geminiReq)
	if err != nil {
		result.Error = fmt.Sprintf("failed to marshal request: %v", err)
		return result, err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s",
		s.baseURL, url.PathEscape(strings.TrimSpace(cfg.Model)),
		url.Values{"key": {strings.TrimSpace(cfg.APIKey)}}.Encode())

	body, err := postJSON(ctx, s.client, s.Name(), endpoint, nil, jsonData)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	text, err := extractGeminiText(body)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	result.TranslatedText = postprocess.Clean(text)
	result.Metadata = map[string]string{"model": cfg.Model}
	return result, nil
}

// extractGeminiText reads candidates[0].content.parts[0].text.
func extractGeminiText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", shapeError(ProviderGemini, body)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", shapeError(ProviderGemini, body)
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == nil {
		return "", shapeError(ProviderGemini, body)
	}
	return *parts[0].Text, nil
}
