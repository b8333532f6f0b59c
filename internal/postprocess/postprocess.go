// Package postprocess removes common LLM artifacts from provider output.
//
// Clean is applied by every vendor adapter before text leaves the translator
// package; StripCodeFence is used by the copyediting stage before decoding
// the JSON object it asked for.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean removes LLM artifacts from text in two phases and returns the
// trimmed result:
//  1. Thinking / reasoning block removal
//  2. Instruction echo removal (prompt leakage)
//
// Surrounding quotes are kept: a translated quotation must stay quoted.
func Clean(text string) string {
	text = removeThinkingBlocks(text)
	text = removeInstructionEchoes(text)
	return strings.TrimSpace(text)
}

// --- Phase 1: thinking blocks ---

// Each tag variant is listed explicitly because RE2 has no backreferences.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>|<reflection>.*?</reflection>`,
)

// truncatedThinkingRe matches an opened thinking tag whose closing tag is
// missing (the model was cut off mid-thought).
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>|<reflection>).*$`,
)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// --- Phase 2: instruction echoes ---

// echoPatterns match introductory phrases prepended despite the "translation
// only" rule, in English and Italian. Anchored at the start and ending in a
// colon to avoid eating real content.
var echoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the| your)? (?:english |italian |literal |neutral )?(?:translation|translated text)\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:english |italian )?(?:translation|translated text)\s*:`),
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.!]? here(?:'s| is)(?: the| your)? (?:english |italian )?(?:translation|text)\s*:`),
	regexp.MustCompile(`(?i)^(?:ecco (?:la )?traduzione(?: in (?:italiano|inglese))?|(?:la )?traduzione in (?:italiano|inglese))\s*:`),
}

func removeInstructionEchoes(text string) string {
	for _, re := range echoPatterns {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// --- Code fences ---

var codeFenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\n(.*?)\n?```$")

// StripCodeFence unwraps text enclosed in a single markdown code fence such
// as ```json ... ```. Anything else is returned trimmed and unchanged.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if m := codeFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}
