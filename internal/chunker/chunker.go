// Package chunker splits long texts into translatable chunks on paragraph
// boundaries and joins translated parts back together.
//
// The default translation flow sends the whole input as a single chunk; the
// chunker is only used when a chunk size is configured.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxChars is the chunk size used when chunking is enabled
	// without an explicit size.
	DefaultMaxChars = 9000

	// Separator is placed between paragraphs inside a chunk and between
	// joined parts.
	Separator = "\n\n"
)

var paragraphBreakRe = regexp.MustCompile(`\n{2,}`)

// Paragraphs returns the trimmed, non-empty paragraphs of text. Paragraphs
// are separated by two or more newlines.
func Paragraphs(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	var paras []string
	for _, p := range paragraphBreakRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// Chunk packs whole paragraphs into chunks of at most maxChars runes
// (separators included). A paragraph longer than maxChars becomes a chunk on
// its own and is never split. If maxChars ≤ 0 every paragraph goes into a
// single chunk. Empty input yields no chunks.
func Chunk(text string, maxChars int) []string {
	paras := Paragraphs(text)
	if len(paras) == 0 {
		return nil
	}
	if maxChars <= 0 {
		return []string{strings.Join(paras, Separator)}
	}

	var chunks []string
	var buf []string
	bufLen := 0

	for _, p := range paras {
		pLen := utf8.RuneCountInString(p)
		addLen := pLen
		if len(buf) > 0 {
			addLen += utf8.RuneCountInString(Separator)
		}
		if len(buf) > 0 && bufLen+addLen > maxChars {
			chunks = append(chunks, strings.Join(buf, Separator))
			buf, bufLen = []string{p}, pLen
			continue
		}
		buf = append(buf, p)
		bufLen += addLen
	}

	if len(buf) > 0 {
		chunks = append(chunks, strings.Join(buf, Separator))
	}
	return chunks
}

// Join trims every part, drops empty ones and joins the rest with a blank
// line.
func Join(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.TrimSpace(strings.Join(kept, Separator))
}
