// internal/engine/spacy/normalizer.go
package spacy

import (
	"encoding/json"
	"strings"

	"german-tagger/internal/common/metrics"
	"german-tagger/internal/models"
	"german-tagger/pkg/ud"
)

// document mirrors the sidecar's doc JSON: spaCy's sentence spans with their
// tokens, morph serialized as the to_dict() mapping.
type document struct {
	Model string     `json:"model"`
	Sents []sentence `json:"sents"`
}

type sentence struct {
	Tokens []token `json:"tokens"`
}

type token struct {
	Text    string          `json:"text"`
	POS     string          `json:"pos"`
	Lemma   string          `json:"lemma"`
	Morph   json.RawMessage `json:"morph"`
	IsSpace bool            `json:"is_space"`
}

// normalize converts a spaCy doc into the unified sentence/token schema.
// Sentence segmentation is always the engine's own; the splitSentences flag
// is accepted upstream but has no effect here.
func normalize(doc *document, opts models.Options) []models.Sentence {
	sentences := make([]models.Sentence, 0, len(doc.Sents))
	for _, sent := range doc.Sents {
		toks := make([]models.Token, 0, len(sent.Tokens))
		for _, t := range sent.Tokens {
			if t.IsSpace || strings.TrimSpace(t.Text) == "" {
				continue
			}

			morph := map[string]string{}
			if opts.IncludeMorph {
				morph = extractMorph(t.Morph)
			}

			var lemma *string
			if opts.IncludeLemma {
				l := t.Lemma
				lemma = &l
			}

			if !ud.Known(t.POS) {
				metrics.UnknownPOSTags.WithLabelValues(ProviderName).Inc()
			}

			toks = append(toks, models.Token{
				Text:  t.Text,
				POS:   t.POS,
				Lemma: lemma,
				Morph: morph,
			})
		}
		sentences = append(sentences, models.Sentence{Tokens: toks})
	}
	return sentences
}

// extractMorph decodes the morph mapping, degrading to an empty map for the
// token when the payload is missing or malformed.
func extractMorph(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}
	var morph map[string]string
	if err := json.Unmarshal(raw, &morph); err != nil || morph == nil {
		return map[string]string{}
	}
	return morph
}
