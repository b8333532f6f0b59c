package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/valpere/ytali/internal"
	"github.com/valpere/ytali/internal/chunker"
	"github.com/valpere/ytali/internal/config"
	"github.com/valpere/ytali/internal/detector"
	"github.com/valpere/ytali/internal/prompts"
	"github.com/valpere/ytali/internal/translator"
	"github.com/valpere/ytali/internal/validator"
)

// Translator is the dispatch surface the orchestrator needs.
type Translator interface {
	Translate(ctx context.Context, cfg translator.ModelConfig, instructions, text string) (string, error)
}

const (
	phaseLiteral = "literal"
	phaseNeutral = "neutral"
)

// Orchestrator runs translations sequentially: provider by provider, chunk
// by chunk, literal before neutral. It keeps no state between runs.
type Orchestrator struct {
	translator Translator
	detector   *detector.Detector
	validator  *validator.Validator
	logger     *slog.Logger
}

// New wires an orchestrator. A nil logger uses slog.Default().
func New(tr Translator, det *detector.Detector, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		translator: tr,
		detector:   det,
		validator:  validator.New(det),
		logger:     logger,
	}
}

// Run translates chunks with every provider activated by settings. Direction
// is detected once on the whole input before any chunk is dropped. The first
// provider error aborts the run; no partial results are returned.
func (o *Orchestrator) Run(ctx context.Context, settings config.RunSettings, chunks []string, sink ProgressSink) (*internal.TranslationResults, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = Discard
	}

	decision := o.detector.Decide(strings.Join(chunks, chunker.Separator))

	work := chunks
	if settings.MaxChunks > 0 && settings.MaxChunks < len(chunks) {
		work = chunks[:settings.MaxChunks]
	}

	models := settings.Models()
	if len(models) == 0 {
		return nil, fmt.Errorf("%w: nothing to run, check run mode and API keys", translator.ErrConfig)
	}

	results := &internal.TranslationResults{
		Meta: internal.RunMetadata{
			RunID:            uuid.New().String(),
			DetectedLanguage: string(decision.Detected),
			Direction:        decision.Direction(),
			SourceLanguage:   decision.Source,
			TargetLanguage:   decision.Target,
			ChunkCountTotal:  len(chunks),
			ChunkCountUsed:   len(work),
			RunMode:          settings.Mode.Label(),
		},
	}

	o.logger.Info("translation run started",
		"run_id", results.Meta.RunID,
		"detected", decision.Detected,
		"direction", results.Meta.Direction,
		"providers", len(models),
		"chunks", len(work))

	for idx, cfg := range models {
		prefix := fmt.Sprintf("%d/%d", idx+1, len(models))
		literal, neutral, err := o.translateForModel(ctx, cfg, work, decision, sink, prefix)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Label, err)
		}
		results.Results = append(results.Results, internal.TranslationResult{
			Label:    cfg.Label,
			Provider: string(cfg.Provider),
			Model:    cfg.Model,
			Literal:  literal,
			Neutral:  neutral,
		})
		results.Meta.Warnings = append(results.Meta.Warnings, o.check(cfg.Label, decision, literal, neutral)...)
	}

	return results, nil
}

func (o *Orchestrator) translateForModel(ctx context.Context, cfg translator.ModelConfig, chunks []string, decision detector.Decision, sink ProgressSink, prefix string) (string, string, error) {
	n := max(len(chunks), 1)
	litInst := prompts.Literal(decision.Source, decision.Target)
	neuInst := prompts.Neutral(decision.Source, decision.Target)

	litParts := make([]string, 0, len(chunks))
	neuParts := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		percent := i * 100 / n

		sink.Progress(percent, progressLabel(prefix, cfg, i+1, n, phaseLiteral))
		lit, err := o.translateChunk(ctx, cfg, litInst, chunk, i+1, phaseLiteral)
		if err != nil {
			return "", "", err
		}
		litParts = append(litParts, lit)

		sink.Progress(percent, progressLabel(prefix, cfg, i+1, n, phaseNeutral))
		neu, err := o.translateChunk(ctx, cfg, neuInst, chunk, i+1, phaseNeutral)
		if err != nil {
			return "", "", err
		}
		neuParts = append(neuParts, neu)
	}

	sink.Progress(100, fmt.Sprintf("%s %s done", prefix, cfg.Label))
	return chunker.Join(litParts), chunker.Join(neuParts), nil
}

func (o *Orchestrator) translateChunk(ctx context.Context, cfg translator.ModelConfig, instructions, chunk string, pos int, phase string) (string, error) {
	start := time.Now()
	out, err := o.translator.Translate(ctx, cfg, instructions, chunk)
	if err != nil {
		o.logger.Error("translation failed", "provider", cfg.Provider, "chunk", pos, "phase", phase, "error", err)
		return "", err
	}
	o.logger.Debug("chunk translated",
		"provider", cfg.Provider,
		"chunk", pos,
		"phase", phase,
		"latency", time.Since(start),
		"chars", len([]rune(out)))
	return out, nil
}

// check reports outputs that do not read as the target language.
func (o *Orchestrator) check(label string, decision detector.Decision, literal, neutral string) []string {
	target := validator.ISOCode(decision.Target)
	var warnings []string
	outputs := []struct{ phase, text string }{{phaseLiteral, literal}, {phaseNeutral, neutral}}
	for _, out := range outputs {
		phase, text := out.phase, out.text
		if strings.TrimSpace(text) == "" {
			continue
		}
		if ok, err := o.validator.IsValid(text, target); !ok {
			msg := fmt.Sprintf("%s %s output: %v", label, phase, err)
			o.logger.Warn("output language mismatch", "provider", label, "phase", phase, "error", err)
			warnings = append(warnings, msg)
		}
	}
	return warnings
}

func progressLabel(prefix string, cfg translator.ModelConfig, i, n int, phase string) string {
	return fmt.Sprintf("%s %s (%s) chunk %d/%d (%s)", prefix, cfg.Label, cfg.Badge(), i, n, phase)
}
