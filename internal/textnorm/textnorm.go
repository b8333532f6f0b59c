// Package textnorm turns uploaded bytes into clean input text.
package textnorm

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

const bom = "\uFEFF"

// Decode reads raw as UTF-8 and falls back to Latin-1 when raw is not valid
// UTF-8. Latin-1 maps every byte, so Decode never fails.
func Decode(raw []byte) string {
	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), bom)
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}
	return string(out)
}

// Normalize trims text and composes it to NFC so that "e" + a combining accent
// and "è" compare equal downstream.
func Normalize(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
