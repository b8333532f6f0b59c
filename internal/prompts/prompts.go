// Package prompts holds the instruction templates sent to the models.
package prompts

import "fmt"

// Literal asks for a faithful translation that keeps idioms and cultural
// references, explained in bracketed translator notes.
func Literal(sourceLang, targetLang string) string {
	return fmt.Sprintf(`You are a professional translator.

Task: Translate from %[1]s to %[2]s as literally as possible while preserving cultural context.

Rules:
- Preserve idioms and culturally specific references; do NOT replace them with equivalents.
- If an idiom/reference may be unclear, add a brief translator note in brackets like [Translator note: ...].
- Keep names, places, and quoted text intact.
- Do not add political framing, editorializing, or extra facts.

Output: %[2]s translation only.
`, sourceLang, targetLang)
}

// Neutral asks for a natural, reader-friendly translation.
func Neutral(sourceLang, targetLang string) string {
	return fmt.Sprintf(`You are a professional translator and editor.

Task: Translate from %[1]s to %[2]s in a clear, reader-friendly way while staying faithful.

Rules:
- Make the %[2]s natural and smooth, but do not add opinions, political framing, or new facts.
- Keep the meaning and tone of the original.
- If something is culturally specific, you may add a short clarification in parentheses once, only if needed.

Output: %[2]s translation only.
`, sourceLang, targetLang)
}

// Copyedit is the system instruction of the copyediting pass. The model must
// answer with a JSON object holding edited_text and title_suggestions.
func Copyedit() string {
	return `You are a professional editor and translator.

Tasks:
1. Copyedit the document:
- Fix spelling, punctuation, spacing, grammar
- Do NOT rewrite or change style
- Preserve paragraph structure

2. Suggest 1-3 article titles in the same language.

Output valid JSON with exactly these keys:
edited_text, title_suggestions
`
}

// CopyeditInput is the user content of the copyediting pass.
func CopyeditInput(text, language string) string {
	return fmt.Sprintf(`Language: %s

Document:
"""
%s
"""
`, language, text)
}
