package chunker_test

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/valpere/ytali/internal/chunker"
)

// --- Chunk tests ---

func TestChunk_ShortText(t *testing.T) {
	text := "Ciao, come va?"
	chunks := chunker.Chunk(text, 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected %q, got %q", text, chunks[0])
	}
}

func TestChunk_Unlimited(t *testing.T) {
	text := strings.Repeat("parola ", 500) + "\n\n" + strings.Repeat("word ", 500)
	chunks := chunker.Chunk(text, 0)
	if len(chunks) != 1 {
		t.Errorf("expected 1 chunk when maxChars=0, got %d", len(chunks))
	}
}

func TestChunk_ParagraphBoundary(t *testing.T) {
	para1 := "First paragraph text here."
	para2 := "Second paragraph text here."
	text := para1 + "\n\n" + para2

	chunks := chunker.Chunk(text, 40)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != para1 || chunks[1] != para2 {
		t.Errorf("unexpected chunks: %q", chunks)
	}
}

func TestChunk_PacksSmallParagraphs(t *testing.T) {
	text := "uno\n\ndue\n\ntre\n\nquattro"
	chunks := chunker.Chunk(text, 10)
	want := []string{"uno\n\ndue", "tre", "quattro"}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("expected %q, got %q", want, chunks)
	}
}

func TestChunk_OversizedParagraphStandsAlone(t *testing.T) {
	long := strings.Repeat("x", 50)
	text := "short\n\n" + long + "\n\nend"
	chunks := chunker.Chunk(text, 20)
	want := []string{"short", long, "end"}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("expected %q, got %q", want, chunks)
	}
}

func TestChunk_RoundTripAndBound(t *testing.T) {
	texts := []string{
		"Il gatto dorme.\n\nIl cane abbaia.\n\n\n\nLa città è perché sì.",
		"  leading\r\n\r\ntrailing  \n\n",
		strings.Repeat("Una frase abbastanza lunga. ", 20) + "\n\nCorta.\n\n" + strings.Repeat("parola ", 30),
	}
	for _, max := range []int{1, 15, 40, 200, 0} {
		for _, text := range texts {
			chunks := chunker.Chunk(text, max)

			var rejoined []string
			for _, c := range chunks {
				rejoined = append(rejoined, chunker.Paragraphs(c)...)
			}
			if !reflect.DeepEqual(rejoined, chunker.Paragraphs(text)) {
				t.Errorf("max=%d: paragraphs changed after chunking %q", max, text)
			}
			if got := chunker.Join(chunks); got != strings.Join(chunker.Paragraphs(text), chunker.Separator) {
				t.Errorf("max=%d: Join(chunks) = %q", max, got)
			}

			if max <= 0 {
				continue
			}
			for _, c := range chunks {
				if utf8.RuneCountInString(c) > max && len(chunker.Paragraphs(c)) != 1 {
					t.Errorf("max=%d: chunk %q exceeds the bound with more than one paragraph", max, c)
				}
			}
		}
	}
}

func TestChunk_EmptyText(t *testing.T) {
	if chunks := chunker.Chunk("  \n\n ", 100); len(chunks) != 0 {
		t.Errorf("expected no chunks, got %q", chunks)
	}
}

// --- Join tests ---

func TestJoin(t *testing.T) {
	got := chunker.Join([]string{"  one ", "", "\n", "two\n"})
	if got != "one\n\ntwo" {
		t.Errorf("expected %q, got %q", "one\n\ntwo", got)
	}
	if got := chunker.Join(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
