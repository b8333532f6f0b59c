package editor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/valpere/ytali/internal"
)

// MaxTitles caps the titles kept per provider.
const MaxTitles = 1

// Assembler turns raw translation results into the final outputs. Editor
// failures never reach the caller: the unedited text is kept instead.
type Assembler struct {
	editor Editor
	logger *slog.Logger
}

// NewAssembler wires an assembler. A nil ed disables copyediting; a nil
// logger uses slog.Default().
func NewAssembler(ed Editor, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{editor: ed, logger: logger}
}

// SafeCopyedit returns the edited text and its titles, or text itself with no
// titles when the editor is missing, fails or returns nothing usable.
func (a *Assembler) SafeCopyedit(ctx context.Context, text, language string) Edit {
	if a.editor == nil {
		return Edit{EditedText: text, TitleSuggestions: []string{}}
	}

	edit, err := a.editor.Copyedit(ctx, text, language)
	if err != nil {
		a.logger.Warn("copyedit failed, keeping unedited text", "language", language, "error", err)
		return Edit{EditedText: text, TitleSuggestions: []string{}}
	}
	if strings.TrimSpace(edit.EditedText) == "" {
		return Edit{EditedText: text, TitleSuggestions: []string{}}
	}
	if edit.TitleSuggestions == nil {
		edit.TitleSuggestions = []string{}
	}
	return edit
}

// TitlesOnly runs the editor for its title suggestions alone.
func (a *Assembler) TitlesOnly(ctx context.Context, text, language string) []string {
	if a.editor == nil {
		return []string{}
	}
	edit, err := a.editor.Copyedit(ctx, text, language)
	if err != nil {
		a.logger.Warn("title generation failed", "language", language, "error", err)
		return []string{}
	}
	if edit.TitleSuggestions == nil {
		return []string{}
	}
	return edit.TitleSuggestions
}

// Finalize copyedits the literal and neutral text of every provider in the
// run's target language. Titles come from the neutral edit, with one retry on
// the edited neutral text when none were suggested.
func (a *Assembler) Finalize(ctx context.Context, results *internal.TranslationResults) *internal.Outputs {
	out := &internal.Outputs{Meta: results.Meta}
	language := results.Meta.TargetLanguage

	for _, res := range results.Results {
		lit := a.SafeCopyedit(ctx, res.Literal, language)
		neu := a.SafeCopyedit(ctx, res.Neutral, language)

		titles := neu.TitleSuggestions
		if len(titles) == 0 && a.editor != nil {
			titles = a.TitlesOnly(ctx, neu.EditedText, language)
		}
		if len(titles) > MaxTitles {
			titles = titles[:MaxTitles]
		}

		a.logger.Debug("provider output assembled", "provider", res.Label, "titles", len(titles))
		out.Outputs = append(out.Outputs, internal.EditedOutput{
			Label:   res.Label,
			Literal: lit.EditedText,
			Neutral: neu.EditedText,
			Titles:  titles,
		})
	}
	return out
}
