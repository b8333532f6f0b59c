package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/valpere/ytali/internal"
)

func sampleOutputs() *internal.Outputs {
	return &internal.Outputs{
		Meta: internal.RunMetadata{
			RunID:            "0f8c",
			DetectedLanguage: "it",
			Direction:        "Italian → English",
			SourceLanguage:   "Italian",
			TargetLanguage:   "English",
			ChunkCountTotal:  1,
			ChunkCountUsed:   1,
			RunMode:          "Compare (Gemini vs OpenAI)",
		},
		Outputs: []internal.EditedOutput{
			{Label: "Gemini 2.5 Flash", Literal: "Hi, how goes it? [Translator note: idiom]", Neutral: "Hi, how are you?", Titles: []string{"A Greeting"}},
			{Label: "GPT-5.2", Literal: "Hello, how goes?", Neutral: "Hello, how are you?"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "MD", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "html", want: FormatHTML},
		{in: " json ", want: FormatJSON},
		{in: "pdf", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleOutputs(), Options{})

	for _, want := range []string{
		"- **Direction:** Italian → English",
		"## Gemini 2.5 Flash",
		"**Suggested title:** A Greeting",
		"### Literal (with translator notes)\n\nHi, how goes it? [Translator note: idiom]",
		"## GPT-5.2",
		"### Neutral\n\nHello, how are you?",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Run id") {
		t.Error("run id is only shown in debug mode")
	}
	if strings.Index(md, "## Gemini") > strings.Index(md, "## GPT-5.2") {
		t.Error("providers must keep run order")
	}
	if strings.Count(md, "Suggested title") != 1 {
		t.Error("providers without titles must not show a title line")
	}
}

func TestMarkdown_DebugAndWarnings(t *testing.T) {
	out := sampleOutputs()
	out.Meta.Warnings = []string{"GPT-5.2 literal output: expected en but detected it"}

	md := Markdown(out, Options{Debug: true})
	if !strings.Contains(md, "- **Run id:** 0f8c") || !strings.Contains(md, "- **Chunks:** 1 of 1") {
		t.Errorf("expected debug metadata:\n%s", md)
	}
	if !strings.Contains(md, "> - GPT-5.2 literal output: expected en but detected it") {
		t.Errorf("expected warnings:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	h := HTML(sampleOutputs(), Options{})
	if !strings.Contains(h, "<h2") || !strings.Contains(h, "Gemini 2.5 Flash</h2>") {
		t.Errorf("expected provider heading, got:\n%s", h)
	}
	if !strings.Contains(h, "<strong>Suggested title:</strong> A Greeting") {
		t.Errorf("expected title, got:\n%s", h)
	}
}

func TestHTML_DropsRawHTML(t *testing.T) {
	out := sampleOutputs()
	out.Outputs[0].Literal = "Hello <script>alert(1)</script> there"
	out.Outputs[1].Titles = []string{`<img src=x onerror="alert(1)">`}

	h := HTML(out, Options{})
	for _, bad := range []string{"<script", "<img"} {
		if strings.Contains(h, bad) {
			t.Errorf("model text must not reach the page as markup, found %q in:\n%s", bad, h)
		}
	}
	if !strings.Contains(h, "Hello") {
		t.Errorf("expected surrounding text to survive, got:\n%s", h)
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleOutputs(), FormatText, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	if strings.Contains(got, "\x1b[") {
		t.Error("non-terminal output must not carry escape codes")
	}
	for _, want := range []string{"Direction: Italian → English", "Gemini 2.5 Flash", "Suggested title: A Greeting", "Hello, how are you?"} {
		if !strings.Contains(got, want) {
			t.Errorf("text report missing %q:\n%s", want, got)
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleOutputs(), FormatJSON, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 3 {
		t.Errorf("expected _meta plus two labels, got %d keys", len(decoded))
	}
	if _, ok := decoded[internal.MetaKey]; !ok {
		t.Error("missing _meta entry")
	}

	var gpt struct {
		Literal string   `json:"literal"`
		Neutral string   `json:"neutral"`
		Titles  []string `json:"titles"`
	}
	if err := json.Unmarshal(decoded["GPT-5.2"], &gpt); err != nil {
		t.Fatal(err)
	}
	if gpt.Titles == nil || len(gpt.Titles) != 0 {
		t.Errorf("expected empty titles list, got %v", gpt.Titles)
	}
	if !strings.Contains(string(decoded["GPT-5.2"]), `"titles": []`) {
		t.Errorf("titles must encode as [], got %s", decoded["GPT-5.2"])
	}
}
