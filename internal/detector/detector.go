// Package detector decides the translation direction of an input text:
// Italian to English or English to Italian.
package detector

import (
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// Lang is the detection outcome.
type Lang string

const (
	Italian Lang = "it"
	English Lang = "en"
	Unknown Lang = "unknown"
)

const (
	NameItalian = "Italian"
	NameEnglish = "English"
)

// MaxSampleRunes bounds the prefix of the input that is inspected.
const MaxSampleRunes = 5000

// Decision is the direction chosen for one run.
type Decision struct {
	Detected Lang   `json:"detected"`
	Source   string `json:"source"`
	Target   string `json:"target"`
}

// Direction formats the decision as "Source → Target".
func (d Decision) Direction() string {
	return fmt.Sprintf("%s → %s", d.Source, d.Target)
}

// Classifier is a statistical language identifier. Classify returns a
// lowercase ISO 639-1 code, or false when it cannot decide.
type Classifier interface {
	Classify(text string) (string, bool)
}

// MinConfidence is the lingua confidence below which the heuristic decides.
// Restricted to two languages, lingua names one of them for any input.
const MinConfidence = 0.8

type linguaClassifier struct {
	detector      lingua.LanguageDetector
	minConfidence float64
}

// NewLinguaClassifier builds a lingua-go detector restricted to Italian and
// English. Building it loads language models; reuse the instance.
func NewLinguaClassifier() Classifier {
	return NewLinguaClassifierWithConfidence(MinConfidence)
}

// NewLinguaClassifierWithConfidence reports a verdict only when lingua's
// confidence in it reaches minConfidence.
func NewLinguaClassifierWithConfidence(minConfidence float64) Classifier {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Italian, lingua.English).
		Build()
	return &linguaClassifier{detector: detector, minConfidence: minConfidence}
}

func (c *linguaClassifier) Classify(text string) (string, bool) {
	values := c.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return "", false
	}
	// values are sorted by descending confidence
	top := values[0]
	if top.Value() < c.minConfidence {
		return "", false
	}
	return strings.ToLower(top.Language().IsoCode639_1().String()), true
}

type Detector struct {
	classifier Classifier
}

// New returns a detector backed by lingua-go with the heuristic fallback.
func New() *Detector {
	return &Detector{classifier: NewLinguaClassifier()}
}

// NewWithClassifier uses c as the statistical stage. A nil c leaves only the
// heuristic scorer.
func NewWithClassifier(c Classifier) *Detector {
	return &Detector{classifier: c}
}

// DetectISO reports the classifier's verdict on text without the heuristic.
func (d *Detector) DetectISO(text string) (string, bool) {
	if d.classifier == nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	return d.classifier.Classify(text)
}

// Detect classifies text as Italian, English or Unknown. It never fails.
func (d *Detector) Detect(text string) Lang {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return Unknown
	}
	sample = prefix(sample, MaxSampleRunes)

	if code, ok := d.DetectISO(sample); ok {
		switch Lang(code) {
		case Italian:
			return Italian
		case English:
			return English
		}
	}

	score := HeuristicScore(sample)
	switch {
	case score >= 1:
		return Italian
	case score <= -1:
		return English
	default:
		return Unknown
	}
}

// Decide maps the detected language to a direction. Unknown and empty input
// default to Italian → English.
func (d *Detector) Decide(text string) Decision {
	switch lang := d.Detect(text); lang {
	case English:
		return Decision{Detected: English, Source: NameEnglish, Target: NameItalian}
	case Italian:
		return Decision{Detected: Italian, Source: NameItalian, Target: NameEnglish}
	default:
		return Decision{Detected: Unknown, Source: NameItalian, Target: NameEnglish}
	}
}

func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
