// internal/engine/spacy/normalizer_test.go
package spacy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"german-tagger/internal/models"
)

func allOpts() models.Options {
	return models.Options{SplitSentences: true, IncludeLemma: true, IncludeMorph: true}
}

func rawMorph(t *testing.T, m map[string]string) json.RawMessage {
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return data
}

func TestNormalize_Basic(t *testing.T) {
	doc := &document{
		Model: "de_core_news_lg",
		Sents: []sentence{
			{
				Tokens: []token{
					{Text: "Der", POS: "DET", Lemma: "der", Morph: rawMorph(t, map[string]string{"Case": "Nom", "Gender": "Masc", "Number": "Sing"})},
					{Text: "Hund", POS: "NOUN", Lemma: "Hund", Morph: rawMorph(t, map[string]string{"Case": "Nom", "Number": "Sing"})},
					{Text: "läuft", POS: "VERB", Lemma: "laufen", Morph: rawMorph(t, map[string]string{"Number": "Sing", "Person": "3"})},
					{Text: ".", POS: "PUNCT", Lemma: ".", Morph: rawMorph(t, map[string]string{})},
				},
			},
		},
	}

	sentences := normalize(doc, allOpts())

	require.Len(t, sentences, 1)
	require.Len(t, sentences[0].Tokens, 4)

	first := sentences[0].Tokens[0]
	assert.Equal(t, "Der", first.Text)
	assert.Equal(t, "DET", first.POS)
	require.NotNil(t, first.Lemma)
	assert.Equal(t, "der", *first.Lemma)
	assert.Equal(t, "Nom", first.Morph["Case"])

	verb := sentences[0].Tokens[2]
	require.NotNil(t, verb.Lemma)
	assert.Equal(t, "laufen", *verb.Lemma)
}

func TestNormalize_SkipsWhitespaceTokens(t *testing.T) {
	tests := []struct {
		name  string
		tok   token
		kept  bool
	}{
		{"regular token", token{Text: "Hund", POS: "NOUN"}, true},
		{"space token flagged", token{Text: " ", IsSpace: true}, false},
		{"whitespace only text", token{Text: "\t\n"}, false},
		{"empty text", token{Text: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &document{Sents: []sentence{{Tokens: []token{tt.tok}}}}
			sentences := normalize(doc, allOpts())
			require.Len(t, sentences, 1)
			if tt.kept {
				assert.Len(t, sentences[0].Tokens, 1)
			} else {
				assert.Empty(t, sentences[0].Tokens)
			}
		})
	}
}

func TestNormalize_LemmaExcluded(t *testing.T) {
	doc := &document{Sents: []sentence{{Tokens: []token{
		{Text: "Hund", POS: "NOUN", Lemma: "Hund"},
	}}}}

	opts := allOpts()
	opts.IncludeLemma = false
	sentences := normalize(doc, opts)

	require.Len(t, sentences[0].Tokens, 1)
	assert.Nil(t, sentences[0].Tokens[0].Lemma)
}

func TestNormalize_MorphExcluded(t *testing.T) {
	doc := &document{Sents: []sentence{{Tokens: []token{
		{Text: "Hund", POS: "NOUN", Lemma: "Hund", Morph: rawMorph(t, map[string]string{"Case": "Nom"})},
	}}}}

	opts := allOpts()
	opts.IncludeMorph = false
	sentences := normalize(doc, opts)

	require.Len(t, sentences[0].Tokens, 1)
	assert.Empty(t, sentences[0].Tokens[0].Morph)
	assert.NotNil(t, sentences[0].Tokens[0].Morph)
}

func TestExtractMorph_DegradesOnMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
	}{
		{"nil payload", nil},
		{"empty payload", json.RawMessage("")},
		{"null payload", json.RawMessage("null")},
		{"wrong type", json.RawMessage(`"Case=Nom"`)},
		{"non-string values", json.RawMessage(`{"Degree": 2}`)},
		{"broken json", json.RawMessage(`{"Case":`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			morph := extractMorph(tt.raw)
			assert.NotNil(t, morph)
			assert.Empty(t, morph)
		})
	}
}

func TestNormalize_EmptySentencesPreserved(t *testing.T) {
	doc := &document{Sents: []sentence{
		{Tokens: []token{{Text: "Ja", POS: "ADV", Lemma: "ja"}}},
		{Tokens: []token{{Text: " ", IsSpace: true}}},
	}}

	sentences := normalize(doc, allOpts())

	// A sentence whose tokens are all whitespace stays in the output, empty.
	require.Len(t, sentences, 2)
	assert.Len(t, sentences[0].Tokens, 1)
	assert.Empty(t, sentences[1].Tokens)
}
