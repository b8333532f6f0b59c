package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/valpere/ytali/internal"
)

// Markdown renders out as a markdown document.
func Markdown(out *internal.Outputs, opts Options) string {
	var b strings.Builder

	b.WriteString("# Translation\n\n")
	for _, l := range summary(out.Meta, opts) {
		fmt.Fprintf(&b, "- **%s:** %s\n", l.key, l.value)
	}
	b.WriteString("\n")

	if len(out.Meta.Warnings) > 0 {
		b.WriteString("> **Warnings**\n")
		for _, w := range out.Meta.Warnings {
			fmt.Fprintf(&b, "> - %s\n", w)
		}
		b.WriteString("\n")
	}

	for _, o := range out.Outputs {
		fmt.Fprintf(&b, "## %s\n\n", o.Label)
		if title := titleOf(o); title != "" {
			fmt.Fprintf(&b, "**Suggested title:** %s\n\n", title)
		}
		fmt.Fprintf(&b, "### Literal (with translator notes)\n\n%s\n\n", o.Literal)
		fmt.Fprintf(&b, "### Neutral\n\n%s\n\n", o.Neutral)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// HTML renders the markdown report as an HTML fragment.
func HTML(out *internal.Outputs, opts Options) string {
	return ToHTML([]byte(Markdown(out, opts)))
}

func ToHTML(md []byte) string {
	opts := html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML,
	}
	renderer := html.NewRenderer(opts)
	ext := parser.CommonExtensions | parser.Attributes
	p := parser.NewWithExtensions(ext)
	doc := p.Parse(md)
	return string(markdown.Render(doc, renderer))
}
