// internal/models/annotation.go
package models

// TagRequest is the body of POST /tag. The three flags are pointers so an
// omitted flag can default to true while an explicit false is preserved.
type TagRequest struct {
	Text           string `json:"text"`
	SplitSentences *bool  `json:"splitSentences,omitempty"`
	IncludeLemma   *bool  `json:"includeLemma,omitempty"`
	IncludeMorph   *bool  `json:"includeMorph,omitempty"`
}

// Options are the resolved formatting flags passed to the engines.
type Options struct {
	SplitSentences bool
	IncludeLemma   bool
	IncludeMorph   bool
}

// Resolve applies the default-true semantics to the request flags.
func (r *TagRequest) Resolve() Options {
	opts := Options{SplitSentences: true, IncludeLemma: true, IncludeMorph: true}
	if r.SplitSentences != nil {
		opts.SplitSentences = *r.SplitSentences
	}
	if r.IncludeLemma != nil {
		opts.IncludeLemma = *r.IncludeLemma
	}
	if r.IncludeMorph != nil {
		opts.IncludeMorph = *r.IncludeMorph
	}
	return opts
}

// Token is one annotated surface form. Lemma serializes to null when lemmas
// are excluded; absent-vs-empty is a contract distinction the callers rely on.
type Token struct {
	Text  string            `json:"text"`
	POS   string            `json:"pos"`
	Lemma *string           `json:"lemma"`
	Morph map[string]string `json:"morph"`
}

// Sentence is an ordered token sequence as segmented by the engine.
type Sentence struct {
	Tokens []Token `json:"tokens"`
}

// TagResponse is the unified response shape produced from either engine.
type TagResponse struct {
	Model       string     `json:"model"`
	Transformer bool       `json:"transformer"`
	Sentences   []Sentence `json:"sentences"`
}

// HealthResponse reports overall and per-engine availability.
type HealthResponse struct {
	OK        bool            `json:"ok"`
	Providers map[string]bool `json:"providers"`
}

// ErrorResponse is the body of every non-200 API reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
