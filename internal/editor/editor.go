// Package editor runs the copyediting pass over finished translations and
// proposes an article title.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/valpere/ytali/internal/postprocess"
	"github.com/valpere/ytali/internal/prompts"
	"github.com/valpere/ytali/internal/translator"
)

// ErrMalformed reports an editor reply that is not the JSON object asked for.
var ErrMalformed = errors.New("malformed copyedit response")

// Edit is the decoded editor reply.
type Edit struct {
	EditedText       string   `json:"edited_text"`
	TitleSuggestions []string `json:"title_suggestions"`
}

type Editor interface {
	Copyedit(ctx context.Context, text, language string) (Edit, error)
}

// Translator sends one instruction/text pair to a model.
type Translator interface {
	Translate(ctx context.Context, cfg translator.ModelConfig, instructions, text string) (string, error)
}

// LLMEditor asks a chat model to copyedit a document and suggest titles.
type LLMEditor struct {
	translator Translator
	model      translator.ModelConfig
}

func NewLLMEditor(tr Translator, model translator.ModelConfig) *LLMEditor {
	return &LLMEditor{translator: tr, model: model}
}

// Copyedit fixes spelling, punctuation and grammar of text without changing
// its style. language names the language text is written in.
func (e *LLMEditor) Copyedit(ctx context.Context, text, language string) (Edit, error) {
	raw, err := e.translator.Translate(ctx, e.model, prompts.Copyedit(), prompts.CopyeditInput(text, language))
	if err != nil {
		return Edit{}, fmt.Errorf("copyedit request failed: %w", err)
	}
	return parseEditResponse(raw)
}

func parseEditResponse(response string) (Edit, error) {
	response = postprocess.StripCodeFence(response)

	var parsed struct {
		EditedText       *string         `json:"edited_text"`
		TitleSuggestions json.RawMessage `json:"title_suggestions"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return Edit{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if parsed.EditedText == nil {
		return Edit{}, fmt.Errorf("%w: missing edited_text", ErrMalformed)
	}

	// Anything but a list of strings counts as no suggestion.
	var titles []string
	if len(parsed.TitleSuggestions) > 0 {
		if err := json.Unmarshal(parsed.TitleSuggestions, &titles); err != nil {
			titles = nil
		}
	}

	return Edit{EditedText: *parsed.EditedText, TitleSuggestions: cleanTitles(titles)}, nil
}

func cleanTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
