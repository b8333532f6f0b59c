// Package report renders the final outputs of a run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/valpere/ytali/internal"
)

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatMarkdown, FormatHTML, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, markdown, html or json)", s)
	}
}

// Options tune the rendered report.
type Options struct {
	// Debug adds run id and chunk counts to the run summary.
	Debug bool
}

// Render writes out in the given format.
func Render(w io.Writer, out *internal.Outputs, format Format, opts Options) error {
	switch format {
	case FormatText:
		return Text(w, out, opts)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(out, opts))
		return err
	case FormatHTML:
		_, err := io.WriteString(w, HTML(out, opts))
		return err
	case FormatJSON:
		return JSON(w, out)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// JSON writes the result mapping: "_meta" plus one entry per provider label.
func JSON(w io.Writer, out *internal.Outputs) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

type summaryLine struct {
	key   string
	value string
}

// summary lists the run metadata shown above the provider sections.
func summary(meta internal.RunMetadata, opts Options) []summaryLine {
	lines := []summaryLine{
		{"Run mode", meta.RunMode},
		{"Direction", meta.Direction},
		{"Detected", meta.DetectedLanguage},
	}
	if opts.Debug {
		lines = append(lines,
			summaryLine{"Run id", meta.RunID},
			summaryLine{"Chunks", fmt.Sprintf("%d of %d", meta.ChunkCountUsed, meta.ChunkCountTotal)},
		)
	}
	return lines
}

func titleOf(o internal.EditedOutput) string {
	if len(o.Titles) == 0 {
		return ""
	}
	return o.Titles[0]
}
