package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/valpere/ytali/internal"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorWarning = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#94A3B8")
)

type textStyles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	key     lipgloss.Style
	section lipgloss.Style
	title   lipgloss.Style
	warning lipgloss.Style
}

// newTextStyles binds the styles to the color profile of w, so redirected
// output carries no escape codes.
func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		header:  r.NewStyle().Foreground(colorPrimary).Bold(true),
		label:   r.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true),
		key:     r.NewStyle().Foreground(colorMuted),
		section: r.NewStyle().Bold(true),
		title:   r.NewStyle().Italic(true),
		warning: r.NewStyle().Foreground(colorWarning),
	}
}

// Text renders out for a terminal.
func Text(w io.Writer, out *internal.Outputs, opts Options) error {
	st := newTextStyles(w)
	var b strings.Builder

	b.WriteString(st.header.Render("Translation"))
	b.WriteString("\n")
	for _, l := range summary(out.Meta, opts) {
		fmt.Fprintf(&b, "%s %s\n", st.key.Render(l.key+":"), l.value)
	}
	for _, warn := range out.Meta.Warnings {
		fmt.Fprintf(&b, "%s\n", st.warning.Render("warning: "+warn))
	}

	for _, o := range out.Outputs {
		b.WriteString("\n")
		b.WriteString(st.label.Render(o.Label))
		b.WriteString("\n")
		if title := titleOf(o); title != "" {
			fmt.Fprintf(&b, "%s %s\n", st.key.Render("Suggested title:"), st.title.Render(title))
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", st.section.Render("Literal (with translator notes)"), o.Literal)
		fmt.Fprintf(&b, "\n%s\n%s\n", st.section.Render("Neutral"), o.Neutral)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
