// internal/engine/registry_test.go
package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"german-tagger/internal/models"
)

type fakeProvider struct {
	name string
}

func (f *fakeProvider) Name() string      { return f.name }
func (f *fakeProvider) Model() string     { return f.name + "-model" }
func (f *fakeProvider) Transformer() bool { return false }
func (f *fakeProvider) Tag(_ context.Context, _ string, _ models.Options) ([]models.Sentence, error) {
	return nil, nil
}

func TestRegistry_Availability(t *testing.T) {
	tests := []struct {
		name      string
		primary   Provider
		secondary Provider
		expected  map[string]bool
		any       bool
	}{
		{
			name:      "both loaded",
			primary:   &fakeProvider{name: ProviderSpacy},
			secondary: &fakeProvider{name: ProviderStanza},
			expected:  map[string]bool{"spacy": true, "stanza": true},
			any:       true,
		},
		{
			name:      "primary only",
			primary:   &fakeProvider{name: ProviderSpacy},
			secondary: nil,
			expected:  map[string]bool{"spacy": true, "stanza": false},
			any:       true,
		},
		{
			name:      "secondary only",
			primary:   nil,
			secondary: &fakeProvider{name: ProviderStanza},
			expected:  map[string]bool{"spacy": false, "stanza": true},
			any:       true,
		},
		{
			name:     "neither loaded",
			expected: map[string]bool{"spacy": false, "stanza": false},
			any:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(tt.primary, tt.secondary)

			assert.Equal(t, tt.expected, r.Availability())
			assert.Equal(t, tt.any, r.AnyAvailable())
			assert.Equal(t, tt.expected[ProviderSpacy], r.Available(ProviderSpacy))
			assert.Equal(t, tt.expected[ProviderStanza], r.Available(ProviderStanza))
			assert.False(t, r.Available("unknown"))
		})
	}
}
