package translator

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ProviderID names one of the closed set of LLM vendors.
type ProviderID string

const (
	ProviderOpenAI ProviderID = "openai"
	ProviderGemini ProviderID = "gemini"
)

// Temperature is sent with every translation request to reduce variance.
const Temperature = 0.2

// maxErrorBody bounds how much of a vendor response is embedded in errors.
const maxErrorBody = 4000

// ModelConfig identifies one model of one provider for a single run.
type ModelConfig struct {
	Provider ProviderID `mapstructure:"provider" json:"provider"`
	Model    string     `mapstructure:"model" json:"model"`
	APIKey   string     `mapstructure:"api_key" json:"-"`
	Label    string     `mapstructure:"label" json:"label"`
}

// Validate must pass before any request is issued for cfg.
func (c ModelConfig) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("%w: unsupported provider %q", ErrConfig, c.Provider)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: missing model id for %s", ErrConfig, c.Provider)
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: missing API key for %s", ErrConfig, c.Provider)
	}
	return nil
}

// Badge is the short "provider | model" tag shown in progress labels.
func (c ModelConfig) Badge() string {
	return fmt.Sprintf("%s | %s", c.Provider, c.Model)
}

type TranslateRequest struct {
	Instructions string `json:"instructions"`
	Text         string `json:"text"`
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Metadata       map[string]string `json:"metadata"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

// TranslationService is one vendor adapter. Implementations issue exactly one
// request per Translate call and never retry.
type TranslationService interface {
	Name() ProviderID
	Translate(ctx context.Context, cfg ModelConfig, req TranslateRequest) (*ServiceResult, error)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
