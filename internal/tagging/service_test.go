// internal/tagging/service_test.go
package tagging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "german-tagger/internal/common/errors"
	"german-tagger/internal/common/logger"
	"german-tagger/internal/common/observability"
	"german-tagger/internal/engine"
	"german-tagger/internal/models"
)

// ==========================
// Test Provider Implementation
// ==========================

type mockProvider struct {
	name        string
	model       string
	transformer bool
	err         error
	calls       int
	lastText    string
	lastOpts    models.Options
}

func (m *mockProvider) Name() string      { return m.name }
func (m *mockProvider) Model() string     { return m.model }
func (m *mockProvider) Transformer() bool { return m.transformer }

func (m *mockProvider) Tag(_ context.Context, text string, opts models.Options) ([]models.Sentence, error) {
	m.calls++
	m.lastText = text
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	lemma := "laufen"
	return []models.Sentence{
		{Tokens: []models.Token{
			{Text: "läuft", POS: "VERB", Lemma: &lemma, Morph: map[string]string{"Person": "3"}},
		}},
	}, nil
}

func primaryMock() *mockProvider {
	return &mockProvider{name: "spacy", model: "de_core_news_lg", transformer: false}
}

func secondaryMock() *mockProvider {
	return &mockProvider{name: "stanza", model: "stanza-de", transformer: true}
}

func newTestService(primary, secondary engine.Provider, t *testing.T) *Service {
	registry := engine.NewRegistry(primary, secondary)
	return NewService(registry, observability.New("test"), logger.NewTestLogger(t))
}

// ==========================
// Fallback Behaviour
// ==========================

func TestService_Tag_PrimarySucceeds(t *testing.T) {
	primary := primaryMock()
	secondary := secondaryMock()
	svc := newTestService(primary, secondary, t)

	resp, stdErr := svc.Tag(context.Background(), &models.TagRequest{Text: "Der Hund läuft."})

	require.Nil(t, stdErr)
	assert.Equal(t, "de_core_news_lg", resp.Model)
	assert.False(t, resp.Transformer)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls, "secondary must not be invoked when primary succeeds")
}

func TestService_Tag_PrimaryFailsSecondaryAnswers(t *testing.T) {
	primary := primaryMock()
	primary.err = errors.New("SPACY_ANNOTATE_FAILED: status 500")
	secondary := secondaryMock()
	svc := newTestService(primary, secondary, t)

	resp, stdErr := svc.Tag(context.Background(), &models.TagRequest{Text: "Der Hund läuft."})

	require.Nil(t, stdErr)
	assert.Equal(t, "stanza-de", resp.Model)
	assert.True(t, resp.Transformer)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestService_Tag_PrimaryUnavailable(t *testing.T) {
	secondary := secondaryMock()
	svc := newTestService(nil, secondary, t)

	resp, stdErr := svc.Tag(context.Background(), &models.TagRequest{Text: "Der Hund läuft."})

	require.Nil(t, stdErr)
	assert.True(t, resp.Transformer)
	assert.Equal(t, 1, secondary.calls)
}

func TestService_Tag_BothFail(t *testing.T) {
	primary := primaryMock()
	primary.err = errors.New("boom")
	secondary := secondaryMock()
	secondary.err = engine.ErrEngineTimeout
	svc := newTestService(primary, secondary, t)

	resp, stdErr := svc.Tag(context.Background(), &models.TagRequest{Text: "Der Hund läuft."})

	assert.Nil(t, resp)
	require.NotNil(t, stdErr)
	assert.Equal(t, commonerrors.ErrCodeNoProviderAvailable, stdErr.Code)
}

func TestService_Tag_NoneAvailable(t *testing.T) {
	svc := newTestService(nil, nil, t)

	resp, stdErr := svc.Tag(context.Background(), &models.TagRequest{Text: "Der Hund läuft."})

	assert.Nil(t, resp)
	require.NotNil(t, stdErr)
	assert.Equal(t, commonerrors.ErrCodeNoProviderAvailable, stdErr.Code)
}

func TestService_Tag_NoRetriesWithinRequest(t *testing.T) {
	primary := primaryMock()
	primary.err = errors.New("boom")
	svc := newTestService(primary, nil, t)

	_, stdErr := svc.Tag(context.Background(), &models.TagRequest{Text: "Der Hund läuft."})

	require.NotNil(t, stdErr)
	assert.Equal(t, 1, primary.calls, "a failing engine is not retried within a request")
}

// ==========================
// Validation and Flags
// ==========================

func TestService_Tag_EmptyText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"spaces only", "   "},
		{"tabs and newlines", "\t\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := primaryMock()
			svc := newTestService(primary, nil, t)

			resp, stdErr := svc.Tag(context.Background(), &models.TagRequest{Text: tt.text})

			assert.Nil(t, resp)
			require.NotNil(t, stdErr)
			assert.Equal(t, commonerrors.ErrCodeEmptyText, stdErr.Code)
			assert.Equal(t, 0, primary.calls, "no engine is invoked for blank input")
		})
	}
}

func TestService_Tag_TrimsTextBeforeEngine(t *testing.T) {
	primary := primaryMock()
	svc := newTestService(primary, nil, t)

	_, stdErr := svc.Tag(context.Background(), &models.TagRequest{Text: "  Der Hund läuft.  "})

	require.Nil(t, stdErr)
	assert.Equal(t, "Der Hund läuft.", primary.lastText)
}

func TestService_Tag_FlagDefaults(t *testing.T) {
	falseVal := false

	tests := []struct {
		name     string
		req      models.TagRequest
		expected models.Options
	}{
		{
			name:     "all flags omitted default to true",
			req:      models.TagRequest{Text: "Hallo"},
			expected: models.Options{SplitSentences: true, IncludeLemma: true, IncludeMorph: true},
		},
		{
			name:     "explicit false preserved",
			req:      models.TagRequest{Text: "Hallo", IncludeLemma: &falseVal, IncludeMorph: &falseVal},
			expected: models.Options{SplitSentences: true, IncludeLemma: false, IncludeMorph: false},
		},
		{
			name:     "splitSentences accepted but behaviour unchanged",
			req:      models.TagRequest{Text: "Hallo", SplitSentences: &falseVal},
			expected: models.Options{SplitSentences: false, IncludeLemma: true, IncludeMorph: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := primaryMock()
			svc := newTestService(primary, nil, t)

			_, stdErr := svc.Tag(context.Background(), &tt.req)

			require.Nil(t, stdErr)
			assert.Equal(t, tt.expected, primary.lastOpts)
		})
	}
}

// ==========================
// Health
// ==========================

func TestService_Health(t *testing.T) {
	tests := []struct {
		name      string
		primary   engine.Provider
		secondary engine.Provider
		ok        bool
	}{
		{"both loaded", primaryMock(), secondaryMock(), true},
		{"primary only", primaryMock(), nil, true},
		{"secondary only", nil, secondaryMock(), true},
		{"neither", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.primary, tt.secondary, t)

			health := svc.Health()

			assert.Equal(t, tt.ok, health.OK)
			assert.Equal(t, tt.primary != nil, health.Providers["spacy"])
			assert.Equal(t, tt.secondary != nil, health.Providers["stanza"])
		})
	}
}
