// internal/engine/stanza/normalizer.go
package stanza

import (
	"strings"

	"german-tagger/internal/common/metrics"
	"german-tagger/internal/models"
	"german-tagger/pkg/ud"
)

// document mirrors the sidecar's doc JSON: Stanza's sentence/word structure
// with morphological features as a single "Key=Value|Key=Value" string.
type document struct {
	Sentences []sentence `json:"sentences"`
}

type sentence struct {
	Words []word `json:"words"`
}

type word struct {
	Text  string `json:"text"`
	UPOS  string `json:"upos"`
	Lemma string `json:"lemma"`
	Feats string `json:"feats"`
}

// normalize converts a Stanza doc into the unified sentence/token schema.
func normalize(doc *document, opts models.Options) []models.Sentence {
	sentences := make([]models.Sentence, 0, len(doc.Sentences))
	for _, sent := range doc.Sentences {
		toks := make([]models.Token, 0, len(sent.Words))
		for _, w := range sent.Words {
			if strings.TrimSpace(w.Text) == "" {
				continue
			}

			morph := map[string]string{}
			if opts.IncludeMorph {
				morph = parseFeats(w.Feats)
			}

			var lemma *string
			if opts.IncludeLemma {
				l := w.Lemma
				lemma = &l
			}

			if !ud.Known(w.UPOS) {
				metrics.UnknownPOSTags.WithLabelValues(ProviderName).Inc()
			}

			toks = append(toks, models.Token{
				Text:  w.Text,
				POS:   w.UPOS,
				Lemma: lemma,
				Morph: morph,
			})
		}
		sentences = append(sentences, models.Sentence{Tokens: toks})
	}
	return sentences
}

// parseFeats splits a "Case=Nom|Gender=Masc" feature string into a map.
// Each pair is split on its first '='; pairs without '=' are skipped.
func parseFeats(feats string) map[string]string {
	morph := map[string]string{}
	if feats == "" {
		return morph
	}
	for _, kv := range strings.Split(feats, "|") {
		idx := strings.Index(kv, "=")
		if idx < 0 {
			continue
		}
		morph[kv[:idx]] = kv[idx+1:]
	}
	return morph
}
