package translator

import (
	"context"
	"fmt"
)

// Dispatcher routes a request to the adapter registered for the provider of
// the model config.
type Dispatcher struct {
	services map[ProviderID]TranslationService
}

func NewDispatcher(services ...TranslationService) *Dispatcher {
	d := &Dispatcher{services: make(map[ProviderID]TranslationService, len(services))}
	for _, svc := range services {
		d.services[svc.Name()] = svc
	}
	return d
}

// NewDefaultDispatcher registers the OpenAI and Gemini adapters. Empty base
// URLs select the public endpoints.
func NewDefaultDispatcher(openAIBaseURL, geminiBaseURL string) *Dispatcher {
	return NewDispatcher(NewOpenAIService(openAIBaseURL), NewGeminiService(geminiBaseURL))
}

// Translate validates cfg and returns the trimmed text produced by the
// matching adapter.
func (d *Dispatcher) Translate(ctx context.Context, cfg ModelConfig, instructions, text string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	svc, ok := d.services[cfg.Provider]
	if !ok {
		return "", fmt.Errorf("%w: unknown provider %q", ErrConfig, cfg.Provider)
	}

	res, err := svc.Translate(ctx, cfg, TranslateRequest{Instructions: instructions, Text: text})
	if err != nil {
		return "", err
	}
	return res.TranslatedText, nil
}
