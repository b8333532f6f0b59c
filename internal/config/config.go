// Package config holds the per-run settings and loads them from flags,
// environment, an optional config file and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valpere/ytali/internal/translator"
)

// RunMode selects which providers take part in a run.
type RunMode string

const (
	ModeCompare RunMode = "compare"
	ModeGemini  RunMode = "gemini"
	ModeOpenAI  RunMode = "openai"
)

const (
	DefaultOpenAIModel = "gpt-5.2"
	DefaultGeminiModel = "gemini-2.5-flash"

	LabelOpenAI = "GPT-5.2"
	LabelGemini = "Gemini 2.5 Flash"
)

// ErrInvalidSettings wraps every validation failure. It matches
// translator.ErrConfig with errors.Is.
var ErrInvalidSettings = fmt.Errorf("invalid settings: %w", translator.ErrConfig)

var modeLabels = map[RunMode]string{
	ModeCompare: "Compare (Gemini vs OpenAI)",
	ModeGemini:  "Gemini only",
	ModeOpenAI:  "OpenAI only",
}

// ParseRunMode accepts the short ids and the long labels.
func ParseRunMode(s string) (RunMode, error) {
	s = strings.TrimSpace(s)
	for mode, label := range modeLabels {
		if strings.EqualFold(s, string(mode)) || strings.EqualFold(s, label) {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: invalid run mode %q", ErrInvalidSettings, s)
}

func (m RunMode) Label() string {
	if label, ok := modeLabels[m]; ok {
		return label
	}
	return string(m)
}

func (m RunMode) wantsGemini() bool { return m == ModeCompare || m == ModeGemini }
func (m RunMode) wantsOpenAI() bool { return m == ModeCompare || m == ModeOpenAI }

// RunSettings is owned by the caller for one run and passed by value.
type RunSettings struct {
	Mode RunMode `mapstructure:"mode"`

	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	OpenAIModel string `mapstructure:"openai_model"`
	GeminiModel string `mapstructure:"gemini_model"`

	OpenAIBaseURL string `mapstructure:"openai_base_url"`
	GeminiBaseURL string `mapstructure:"gemini_base_url"`

	// ChunkChars enables paragraph chunking when > 0.
	ChunkChars int `mapstructure:"chunk_chars"`
	// MaxChunks limits how many chunks are translated when > 0.
	MaxChunks int `mapstructure:"max_chunks"`

	SkipEdit bool `mapstructure:"no_edit"`
	Debug    bool `mapstructure:"debug"`
}

// Validate rejects an unknown mode and a blank key for any provider the
// mode activates. It runs before any network call.
func (s RunSettings) Validate() error {
	if _, ok := modeLabels[s.Mode]; !ok {
		return fmt.Errorf("%w: invalid run mode %q", ErrInvalidSettings, s.Mode)
	}

	var errs []error
	if s.Mode.wantsOpenAI() && strings.TrimSpace(s.OpenAIAPIKey) == "" {
		errs = append(errs, fmt.Errorf("%w: missing OpenAI API key", ErrInvalidSettings))
	}
	if s.Mode.wantsGemini() && strings.TrimSpace(s.GeminiAPIKey) == "" {
		errs = append(errs, fmt.Errorf("%w: missing Gemini API key", ErrInvalidSettings))
	}
	return errors.Join(errs...)
}

func (s RunSettings) openAIModel() translator.ModelConfig {
	return translator.ModelConfig{
		Provider: translator.ProviderOpenAI,
		Model:    orDefault(s.OpenAIModel, DefaultOpenAIModel),
		APIKey:   strings.TrimSpace(s.OpenAIAPIKey),
		Label:    LabelOpenAI,
	}
}

func (s RunSettings) geminiModel() translator.ModelConfig {
	return translator.ModelConfig{
		Provider: translator.ProviderGemini,
		Model:    orDefault(s.GeminiModel, DefaultGeminiModel),
		APIKey:   strings.TrimSpace(s.GeminiAPIKey),
		Label:    LabelGemini,
	}
}

// Models returns the active models in run order: Gemini first, then OpenAI.
func (s RunSettings) Models() []translator.ModelConfig {
	var models []translator.ModelConfig
	if s.Mode.wantsGemini() {
		models = append(models, s.geminiModel())
	}
	if s.Mode.wantsOpenAI() {
		models = append(models, s.openAIModel())
	}
	return models
}

// EditorModel picks the model for the copyediting pass: OpenAI when a key
// is available, Gemini otherwise. ok is false when neither key is set.
func (s RunSettings) EditorModel() (translator.ModelConfig, bool) {
	if strings.TrimSpace(s.OpenAIAPIKey) != "" {
		return s.openAIModel(), true
	}
	if strings.TrimSpace(s.GeminiAPIKey) != "" {
		return s.geminiModel(), true
	}
	return translator.ModelConfig{}, false
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
