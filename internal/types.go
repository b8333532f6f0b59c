package internal

import "encoding/json"

// MetaKey is the reserved entry of the result mapping that carries run
// metadata instead of a provider result.
const MetaKey = "_meta"

type RunMetadata struct {
	RunID            string   `json:"run_id"`
	DetectedLanguage string   `json:"detected_language"`
	Direction        string   `json:"direction"`
	SourceLanguage   string   `json:"source_language"`
	TargetLanguage   string   `json:"target_language"`
	ChunkCountTotal  int      `json:"chunk_count_total"`
	ChunkCountUsed   int      `json:"chunk_count_used"`
	RunMode          string   `json:"run_mode"`
	Warnings         []string `json:"warnings,omitempty"`
}

// TranslationResult holds the raw output of one provider for one run.
type TranslationResult struct {
	Label    string `json:"-"`
	Provider string `json:"-"`
	Model    string `json:"-"`
	Literal  string `json:"literal"`
	Neutral  string `json:"neutral"`
}

// TranslationResults is the orchestrator output: metadata plus one entry per
// active provider, in activation order.
type TranslationResults struct {
	Meta    RunMetadata
	Results []TranslationResult
}

func (r *TranslationResults) Labels() []string {
	labels := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		labels = append(labels, res.Label)
	}
	return labels
}

func (r *TranslationResults) Get(label string) (TranslationResult, bool) {
	for _, res := range r.Results {
		if res.Label == label {
			return res, true
		}
	}
	return TranslationResult{}, false
}

func (r *TranslationResults) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Results)+1)
	m[MetaKey] = r.Meta
	for _, res := range r.Results {
		m[res.Label] = res
	}
	return json.Marshal(m)
}

// EditedOutput is the copyedited per-provider output handed to renderers.
// Titles never holds more than one entry.
type EditedOutput struct {
	Label   string   `json:"-"`
	Literal string   `json:"literal"`
	Neutral string   `json:"neutral"`
	Titles  []string `json:"titles"`
}

type Outputs struct {
	Meta    RunMetadata
	Outputs []EditedOutput
}

func (o *Outputs) Get(label string) (EditedOutput, bool) {
	for _, out := range o.Outputs {
		if out.Label == label {
			return out, true
		}
	}
	return EditedOutput{}, false
}

func (o *Outputs) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(o.Outputs)+1)
	m[MetaKey] = o.Meta
	for _, out := range o.Outputs {
		if out.Titles == nil {
			out.Titles = []string{}
		}
		m[out.Label] = out
	}
	return json.Marshal(m)
}
