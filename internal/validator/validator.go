// Package validator checks that a provider output is written in the
// language the run translated into.
package validator

import (
	"fmt"
	"strings"

	"github.com/valpere/ytali/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt language detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

// Validator shares the run's detector; building a second lingua model set
// per run would be wasteful.
type Validator struct {
	det *detector.Detector
}

func New(det *detector.Detector) *Validator {
	return &Validator{det: det}
}

// IsValid returns true when translatedText appears to be written in
// targetLang (an ISO 639-1 code such as "en").
//
// Short texts and texts whose language cannot be determined pass. A
// mismatch is reported as an error naming both codes.
func (v *Validator) IsValid(translatedText, targetLang string) (bool, error) {
	if targetLang == "" {
		return true, nil
	}

	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return true, nil
	}

	if !strings.EqualFold(detected, targetLang) {
		return false, fmt.Errorf("expected %s but detected %s", targetLang, detected)
	}
	return true, nil
}

// ISOCode maps a language name used in directions to its ISO 639-1 code.
func ISOCode(name string) string {
	switch name {
	case detector.NameItalian:
		return string(detector.Italian)
	case detector.NameEnglish:
		return string(detector.English)
	default:
		return ""
	}
}
